// utils/kana.go
package utils

const (
	KanaGroupAlnum = "英数字"
	KanaGroupOther = "その他"
)

// KanaGroups is the fixed, ordered label set for the two-step customer
// picker: the ten syllabary rows, then alphanumeric, then everything else.
var KanaGroups = []string{
	"ア行", "カ行", "サ行", "タ行", "ナ行",
	"ハ行", "マ行", "ヤ行", "ラ行", "ワ行",
	KanaGroupAlnum, KanaGroupOther,
}

// ClassifyKana maps a reading string to one of KanaGroups by its first
// character. Hiragana is folded to katakana and voiced/semi-voiced and small
// kana fall into their base row, so ガ and が both land in カ行. Latin letters
// and digits (half- or full-width) map to 英数字, everything else to その他.
func ClassifyKana(reading string) string {
	if reading == "" {
		return KanaGroupOther
	}
	r := []rune(reading)[0]

	// Hiragana block folds onto katakana at a fixed offset.
	if r >= 0x3041 && r <= 0x3096 {
		r += 0x60
	}

	switch {
	case r >= 'ァ' && r <= 'オ': // 30A1..30AA
		return "ア行"
	case r >= 'カ' && r <= 'ゴ': // 30AB..30B4
		return "カ行"
	case r >= 'サ' && r <= 'ゾ': // 30B5..30BE
		return "サ行"
	case r >= 'タ' && r <= 'ド': // 30BF..30C9
		return "タ行"
	case r >= 'ナ' && r <= 'ノ': // 30CA..30CE
		return "ナ行"
	case r >= 'ハ' && r <= 'ポ': // 30CF..30DD
		return "ハ行"
	case r >= 'マ' && r <= 'モ': // 30DE..30E2
		return "マ行"
	case r >= 'ャ' && r <= 'ヨ': // 30E3..30E8
		return "ヤ行"
	case r >= 'ラ' && r <= 'ロ': // 30E9..30ED
		return "ラ行"
	case r >= 'ヮ' && r <= 'ン': // 30EE..30F3
		return "ワ行"
	case r == 'ヴ':
		return "ア行"
	case r == 'ヵ' || r == 'ヶ':
		return "カ行"
	}

	if isAlnum(r) {
		return KanaGroupAlnum
	}
	return KanaGroupOther
}

func isAlnum(r rune) bool {
	switch {
	case r >= '0' && r <= '9':
		return true
	case r >= 'A' && r <= 'Z', r >= 'a' && r <= 'z':
		return true
	case r >= '０' && r <= '９': // FF10..FF19
		return true
	case r >= 'Ａ' && r <= 'Ｚ', r >= 'ａ' && r <= 'ｚ': // full-width Latin
		return true
	}
	return false
}
