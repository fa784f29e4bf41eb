package normalization

// defaultLegalFormTokens список токенов организационно-правовых форм,
// удаляемых при нормализации названий. Токены в нижнем регистре, порядок
// фиксированный. Список покрывает распространенные русские и западные ОПФ.
var defaultLegalFormTokens = []string{
	// Западные формы
	"inc",
	"incorporated",
	"corp",
	"corporation",
	"ltd",
	"limited",
	"llc",
	"llp",
	"plc",
	"co",
	"company",
	"gmbh",
	"ag",
	"sa",
	"srl",
	"bv",
	"nv",
	"oy",
	"ab",
	"as",
	"kg",
	"spa",
	"jsc",

	// Русские и казахстанские формы
	"ооо",
	"зао",
	"оао",
	"пао",
	"нао",
	"аозт",
	"ао",
	"ип",
	"тоо",
	"чп",
}

// DefaultLegalFormTokens возвращает копию списка ОПФ-токенов по умолчанию.
// Копия нужна, чтобы вызывающий код не мог изменить общий список.
func DefaultLegalFormTokens() []string {
	tokens := make([]string, len(defaultLegalFormTokens))
	copy(tokens, defaultLegalFormTokens)
	return tokens
}
