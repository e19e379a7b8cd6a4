package barcode

import (
	"bytes"
	"fmt"
	"image/png"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/code128"
)

// Dimensiones por defecto del PNG generado, pensadas para etiquetas de estantería.
const (
	defaultWidth  = 300
	defaultHeight = 80
)

// GeneratePNG codifica el texto como Code-128 y lo devuelve como PNG.
// El código debe ser ASCII imprimible no vacío (restricción de Code-128).
func GeneratePNG(code string) ([]byte, error) {
	if code == "" {
		return nil, fmt.Errorf("código vacío")
	}
	bc, err := code128.Encode(code)
	if err != nil {
		return nil, fmt.Errorf("codificar code-128: %w", err)
	}
	scaled, err := barcode.Scale(bc, defaultWidth, defaultHeight)
	if err != nil {
		return nil, fmt.Errorf("escalar barcode: %w", err)
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, scaled); err != nil {
		return nil, fmt.Errorf("codificar png: %w", err)
	}
	return buf.Bytes(), nil
}
