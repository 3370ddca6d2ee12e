package mapview

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetailURL(t *testing.T) {
	tests := []struct {
		base, name, want string
	}{
		{"det.html", "Etna", "det.html?name=Etna"},
		{"det.html", "Piton de la Fournaise", "det.html?name=Piton%20de%20la%20Fournaise"},
		{"det.html", "Nyiragongo & Co/1+1", "det.html?name=Nyiragongo%20%26%20Co%2F1%2B1"},
		{"det.html", "Hekla?", "det.html?name=Hekla%3F"},
		{"https://example.org/det?lang=it", "Vesuvio", "https://example.org/det?lang=it&name=Vesuvio"},
		{"det.html", "Rinjani (Lombok)", "det.html?name=Rinjani%20(Lombok)"},
		{"det.html", "Kick 'em Jenny!*", "det.html?name=Kick%20'em%20Jenny!*"},
		{"det.html", "Öræfajökull", "det.html?name=%C3%96r%C3%A6faj%C3%B6kull"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetailURL(tt.base, tt.name))
		})
	}
}
