package normalization

import (
	"unicode/utf8"

	"dedupserver/normalization/algorithms"
)

const (
	// DefaultSimilarityThreshold порог расстояния Левенштейна по умолчанию:
	// два нормализованных названия считаются похожими, если расстояние между
	// ними не превышает порог.
	DefaultSimilarityThreshold = 1

	// defaultMaxNormalizedLengthGap максимальная разница длин нормализованных
	// названий, при превышении которой прямой проход прерывается.
	defaultMaxNormalizedLengthGap = 10
)

// DuplicateGroup группа исходных названий, предположительно обозначающих
// одну и ту же организацию. Порядок членов — порядок первого появления во
// входном списке. Группа всегда содержит не менее двух названий.
type DuplicateGroup struct {
	Names      []string `json:"names"`
	Confidence float64  `json:"confidence"`
}

// DuplicateClusterer группирует названия, нормализованные формы которых
// близки по расстоянию Левенштейна.
//
// Алгоритм — жадный однопроходный, без построения полного графа схожести:
// для каждого еще не размещенного названия выполняется прямой проход по
// оставшимся, который полностью прерывается на первом несовпадении или на
// слишком большой разнице длин. Из-за раннего прерывания результат зависит
// от порядка входного списка и может пропускать совпадения, стоящие дальше
// точки разрыва. Это сознательно сохраненное поведение, а не ошибка.
type DuplicateClusterer struct {
	threshold    int
	maxLengthGap int
}

// NewDuplicateClusterer создает кластеризатор с заданным порогом схожести.
// Отрицательный порог заменяется значением по умолчанию.
func NewDuplicateClusterer(threshold int) *DuplicateClusterer {
	if threshold < 0 {
		threshold = DefaultSimilarityThreshold
	}
	return &DuplicateClusterer{
		threshold:    threshold,
		maxLengthGap: defaultMaxNormalizedLengthGap,
	}
}

// NewDuplicateClustererWithLengthGap создает кластеризатор с заданным порогом
// схожести и ограничением разницы длин.
func NewDuplicateClustererWithLengthGap(threshold, maxLengthGap int) *DuplicateClusterer {
	clusterer := NewDuplicateClusterer(threshold)
	if maxLengthGap > 0 {
		clusterer.maxLengthGap = maxLengthGap
	}
	return clusterer
}

// Threshold возвращает действующий порог схожести.
func (dc *DuplicateClusterer) Threshold() int {
	return dc.threshold
}

// FindGroups находит группы похожих названий. Вход: список исходных названий
// в исходном порядке и построенная заранее таблица raw -> normalized, которая
// во время работы только читается. Повторяющиеся исходные строки считаются
// отдельными записями и отслеживаются по позиции, а не по значению.
//
// Название без записи в таблице трактуется как нормализованное в пустую
// строку; по контракту такая ситуация — ошибка вызывающего кода.
//
// Группы из одного элемента не возвращаются. Каждая позиция входа попадает
// не более чем в одну группу. Группы идут в порядке их образования.
func (dc *DuplicateClusterer) FindGroups(names []string, normalized map[string]string) []DuplicateGroup {
	placed := make([]bool, len(names))
	groups := []DuplicateGroup{}

	for i := 0; i < len(names); i++ {
		if placed[i] {
			continue
		}

		anchor := normalized[names[i]]
		anchorLen := utf8.RuneCountInString(anchor)

		members := []string{names[i]}
		memberForms := []string{anchor}
		placed[i] = true

		for j := i + 1; j < len(names); j++ {
			if placed[j] {
				continue
			}

			candidate := normalized[names[j]]

			// Разница длин больше допустимой — названия не отсортированы,
			// поэтому дальнейший просмотр прекращается целиком.
			gap := anchorLen - utf8.RuneCountInString(candidate)
			if gap < 0 {
				gap = -gap
			}
			if gap > dc.maxLengthGap {
				break
			}

			if algorithms.LevenshteinDistance(anchor, candidate) > dc.threshold {
				// Первое несовпадение завершает поиск для этой группы
				break
			}

			members = append(members, names[j])
			memberForms = append(memberForms, candidate)
			placed[j] = true
		}

		if len(members) > 1 {
			groups = append(groups, DuplicateGroup{
				Names:      members,
				Confidence: groupConfidence(memberForms),
			})
		}
	}

	return groups
}

// groupConfidence вычисляет уверенность группы как среднюю попарную схожесть
// нормализованных форм ее членов.
func groupConfidence(forms []string) float64 {
	total := 0.0
	pairs := 0
	for i := 0; i < len(forms)-1; i++ {
		for j := i + 1; j < len(forms); j++ {
			total += algorithms.LevenshteinSimilarity(forms[i], forms[j])
			pairs++
		}
	}
	if pairs == 0 {
		return 1.0
	}
	return total / float64(pairs)
}
