package printer

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDocumentInitializesPrinter(t *testing.T) {
	doc := NewDocument(48)
	assert.Equal(t, []byte{ESC, '@'}, doc.Bytes())
	assert.Equal(t, 48, doc.Width())
}

func TestNewDocumentDefaultWidth(t *testing.T) {
	doc := NewDocument(0)
	assert.Equal(t, 48, doc.Width())
}

func TestText(t *testing.T) {
	doc := NewDocument(48)
	doc.Text("hello")
	assert.True(t, bytes.HasSuffix(doc.Bytes(), []byte("hello\n")))
}

func TestKeyValuePadsToWidth(t *testing.T) {
	doc := NewDocument(20)
	doc.KeyValue("Bill No:", "42")
	assert.True(t, bytes.HasSuffix(doc.Bytes(), []byte("Bill No:          42\n")))
}

func TestKeyValueOverflowKeepsOneSpace(t *testing.T) {
	doc := NewDocument(10)
	doc.KeyValue("A very long key", "value")
	assert.True(t, bytes.HasSuffix(doc.Bytes(), []byte("A very long key value\n")))
}

func TestSeparator(t *testing.T) {
	doc := NewDocument(8)
	doc.Separator('-')
	assert.True(t, bytes.HasSuffix(doc.Bytes(), []byte("--------\n")))
}

func TestPartialCut(t *testing.T) {
	doc := NewDocument(48)
	doc.PartialCut()
	assert.True(t, bytes.HasSuffix(doc.Bytes(), []byte{GS, 'V', 0x01}))
}

func TestStyleCommands(t *testing.T) {
	doc := NewDocument(48)
	doc.SetAlign(AlignCenter).SetBold(true).SetFontSize(FontDouble)

	want := []byte{
		ESC, '@',
		ESC, 'a', 1,
		ESC, 'E', 1,
		GS, '!', FontDouble,
	}
	assert.Equal(t, want, doc.Bytes())
}
