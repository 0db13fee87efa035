package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyKana_RowBaseCharacters(t *testing.T) {
	cases := []struct {
		reading string
		want    string
	}{
		{"アサヒ", "ア行"},
		{"イロハ", "ア行"},
		{"オオタ", "ア行"},
		{"カトウ", "カ行"},
		{"コバヤシ", "カ行"},
		{"サトウ", "サ行"},
		{"スズキ", "サ行"},
		{"タナカ", "タ行"},
		{"ツチヤ", "タ行"},
		{"ナカムラ", "ナ行"},
		{"ハシモト", "ハ行"},
		{"マツダ", "マ行"},
		{"ヤマダ", "ヤ行"},
		{"ヨシダ", "ヤ行"},
		{"リク", "ラ行"},
		{"ワタナベ", "ワ行"},
		{"ヲガワ", "ワ行"},
		{"ンダ", "ワ行"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, ClassifyKana(tc.reading), "reading %q", tc.reading)
	}
}

// Voiced, semi-voiced and hiragana readings all normalize onto the base
// row. This is the single behavior used at every call site.
func TestClassifyKana_Normalization(t *testing.T) {
	cases := []struct {
		reading string
		want    string
	}{
		{"ガンダム", "カ行"},
		{"ギンザ", "カ行"},
		{"ザワ", "サ行"},
		{"ダイドウ", "タ行"},
		{"バンドウ", "ハ行"},
		{"パナソニック", "ハ行"},
		{"ヴィーナス", "ア行"},
		{"がとう", "カ行"},
		{"さくら", "サ行"},
		{"ぱんだ", "ハ行"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, ClassifyKana(tc.reading), "reading %q", tc.reading)
	}
}

func TestClassifyKana_Alphanumeric(t *testing.T) {
	for _, reading := range []string{"ABC商事", "xyz", "123サービス", "Ｚ会", "ｂｉｚ", "７イレブン"} {
		assert.Equal(t, KanaGroupAlnum, ClassifyKana(reading), "reading %q", reading)
	}
}

func TestClassifyKana_Other(t *testing.T) {
	for _, reading := range []string{"", "株式会社", "漢字", "ー", "@mark", "　"} {
		assert.Equal(t, KanaGroupOther, ClassifyKana(reading), "reading %q", reading)
	}
}

// Every reading lands in exactly one of the twelve fixed groups.
func TestClassifyKana_AlwaysInGroupSet(t *testing.T) {
	known := make(map[string]bool, len(KanaGroups))
	for _, g := range KanaGroups {
		known[g] = true
	}

	for _, reading := range []string{"", "ガ", "あ", "A", "９", "漢", "ン", "ヶ丘", "ー"} {
		group := ClassifyKana(reading)
		assert.True(t, known[group], "reading %q classified into unknown group %q", reading, group)
	}

	assert.Len(t, KanaGroups, 12)
}
