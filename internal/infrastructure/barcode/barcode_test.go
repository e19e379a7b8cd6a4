package barcode

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneratePNG(t *testing.T) {
	out, err := GeneratePNG("MAT-000123")
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(out))
	require.NoError(t, err, "la salida debe ser un PNG decodificable")
	assert.Equal(t, defaultWidth, img.Bounds().Dx())
	assert.Equal(t, defaultHeight, img.Bounds().Dy())
}

func TestGeneratePNG_CodigoVacio(t *testing.T) {
	_, err := GeneratePNG("")
	assert.Error(t, err)
}
