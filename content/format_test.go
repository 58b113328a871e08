package content

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatVersePreservesStanzaBreaks(t *testing.T) {
	got := FormatVerse("linha1\n\nlinha2")
	assert.Equal(t, []string{"Linha1", "", "Linha2"}, got)
}

func TestFormatVerseDropsBlanksWithoutStanzaBreak(t *testing.T) {
	got := FormatVerse("  linha1  \nlinha2\nlinha3")
	assert.Equal(t, []string{"Linha1", "Linha2", "Linha3"}, got)
}

func TestFormatVerseBlankPreservationIsGlobal(t *testing.T) {
	// a single double newline anywhere keeps every blank line
	got := FormatVerse("a\n\nb\nc\n\nd")
	assert.Equal(t, []string{"A", "", "B", "C", "", "D"}, got)
}

func TestFormatVerseTrimsBlankEdges(t *testing.T) {
	got := FormatVerse("\n\nlinha1\n\nlinha2\n\n")
	assert.Equal(t, []string{"Linha1", "", "Linha2"}, got)
}

func TestFormatVerseWindowsNewlines(t *testing.T) {
	got := FormatVerse("linha1\r\n\r\nlinha2")
	assert.Equal(t, []string{"Linha1", "", "Linha2"}, got)
}

func TestFormatProseSplitsOnBlankLines(t *testing.T) {
	raw := "primeiro parágrafo\ncontinua aqui.\n\nsegundo parágrafo."
	got := FormatProse(raw)
	assert.Equal(t, []string{
		"Primeiro parágrafo continua aqui.",
		"Segundo parágrafo.",
	}, got)
}

func TestFormatProseHeuristicJoinsShortLines(t *testing.T) {
	raw := "uma linha curta\noutra linha curta\ne o fim da frase.\nnova ideia começa"
	got := FormatProse(raw)
	assert.Equal(t, []string{
		"Uma linha curta outra linha curta",
		"E o fim da frase. Nova ideia começa",
	}, got)
}

func TestFormatProseHeuristicSentenceEndStartsNewParagraph(t *testing.T) {
	raw := "a primeira frase termina aqui.\nesta deveria abrir outro parágrafo.\nsegue junto"
	got := FormatProse(raw)
	// a sentence-ending line opens a fresh paragraph
	assert.Equal(t, []string{
		"A primeira frase termina aqui.",
		"Esta deveria abrir outro parágrafo. Segue junto",
	}, got)
}

func TestFormatProseEmptyInput(t *testing.T) {
	assert.Empty(t, FormatProse("   \n  \n"))
	assert.Empty(t, FormatVerse(""))
}

func TestCapitalizeSentences(t *testing.T) {
	assert.Equal(t, "Olá. Tudo bem? Sim! Claro", CapitalizeSentences("olá. tudo bem? sim! claro"))
	assert.Equal(t, "Já era", CapitalizeSentences("já era"))
	// no whitespace after the period, no capitalization
	assert.Equal(t, "Versão 1.2 do texto", CapitalizeSentences("versão 1.2 do texto"))
	assert.Equal(t, "", CapitalizeSentences(""))
}

func TestFormatProseRoundTripsThroughEditForm(t *testing.T) {
	stored := FormatProse("primeiro bloco sem ponto\n\nsegundo bloco sem ponto")
	require.Len(t, stored, 2)

	// the edit form joins stored paragraphs with a blank line; re-running
	// the formatter over that must not merge them
	resaved := FormatProse(strings.Join(stored, "\n\n"))
	assert.Equal(t, stored, resaved)
}

func TestFormatVerseRoundTripsThroughEditForm(t *testing.T) {
	stored := FormatVerse("linha um\n\nlinha dois")
	require.Equal(t, []string{"Linha um", "", "Linha dois"}, stored)

	assert.Equal(t, stored, FormatVerse(strings.Join(stored, "\n")))
}

func TestFormatContentDispatch(t *testing.T) {
	assert.Equal(t, []string{"A", "", "B"}, FormatContent(Poemas, "a\n\nb"))
	assert.Equal(t, []string{"A", "B"}, FormatContent(Filosofia, "a\n\nb"))
}
