package normalization

import (
	"regexp"
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// NameNormalizer приводит названия компаний к канонической сравниваемой форме.
// Список ОПФ-токенов задается при создании и после этого не изменяется.
type NameNormalizer struct {
	tokens       []string
	tokenPattern *regexp.Regexp
}

// NewNameNormalizer создает нормализатор с заданным списком ОПФ-токенов.
// Пустой список означает список по умолчанию (DefaultLegalFormTokens).
func NewNameNormalizer(tokens []string) *NameNormalizer {
	if len(tokens) == 0 {
		tokens = DefaultLegalFormTokens()
	}

	owned := make([]string, 0, len(tokens))
	for _, token := range tokens {
		token = strings.ToLower(strings.TrimSpace(token))
		if token != "" {
			owned = append(owned, token)
		}
	}

	return &NameNormalizer{
		tokens:       owned,
		tokenPattern: buildTokenPattern(owned),
	}
}

// Normalize выполняет полную нормализацию названия.
// Шаги применяются строго в этом порядке:
//  1. Приведение к нижнему регистру
//  2. Каноническая декомпозиция Unicode (NFD)
//  3. Удаление комбинирующих диакритических знаков
//  4. Удаление ОПФ-токенов как целых слов в любом месте строки
//  5. Схлопывание последовательностей пробельных символов в один пробел
//  6. Обрезка пробелов по краям
//
// Функция детерминирована и определена для любой строки, включая пустую.
func (nn *NameNormalizer) Normalize(raw string) string {
	text := strings.ToLower(raw)
	text = stripDiacritics(text)
	text = nn.removeLegalFormTokens(text)
	return strings.Join(strings.Fields(text), " ")
}

// BuildNormalizedMap строит таблицу raw -> normalized с одной записью на
// каждое различное исходное название. Таблица передается кластеризатору
// и во время кластеризации только читается.
func (nn *NameNormalizer) BuildNormalizedMap(names []string) map[string]string {
	normalized := make(map[string]string, len(names))
	for _, name := range names {
		if _, ok := normalized[name]; ok {
			continue
		}
		normalized[name] = nn.Normalize(name)
	}
	return normalized
}

// removeLegalFormTokens удаляет все вхождения ОПФ-токенов, ограниченные
// границами слов. Замена повторяется, потому что соседние токены делят
// один разделитель и за один проход удаляется только первый из них.
func (nn *NameNormalizer) removeLegalFormTokens(text string) string {
	if nn.tokenPattern == nil {
		return text
	}
	for {
		replaced := nn.tokenPattern.ReplaceAllString(text, "$1$2")
		if replaced == text {
			return replaced
		}
		text = replaced
	}
}

// stripDiacritics раскладывает строку в форму NFD и убирает комбинирующие
// знаки, оставляя только базовые буквы.
func stripDiacritics(text string) string {
	chain := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)))
	stripped, _, err := transform.String(chain, text)
	if err != nil {
		return text
	}
	return stripped
}

// buildTokenPattern компилирует общий шаблон удаления токенов. Стандартная
// граница \b работает только для ASCII, поэтому границы слов заданы явно
// через классы букв и цифр Unicode — иначе кириллические токены вроде "ооо"
// не находились бы вовсе.
func buildTokenPattern(tokens []string) *regexp.Regexp {
	if len(tokens) == 0 {
		return nil
	}

	// Более длинные токены идут первыми, чтобы "incorporated" не разрезался
	// совпадением "inc".
	sorted := make([]string, len(tokens))
	copy(sorted, tokens)
	sort.SliceStable(sorted, func(i, j int) bool {
		return len(sorted[i]) > len(sorted[j])
	})

	quoted := make([]string, len(sorted))
	for i, token := range sorted {
		quoted[i] = regexp.QuoteMeta(token)
	}

	pattern := `(^|[^\pL\pN])(?:` + strings.Join(quoted, "|") + `)($|[^\pL\pN])`
	return regexp.MustCompile(pattern)
}
