package normalization

import (
	"reflect"
	"testing"
)

// normalizeAll строит таблицу raw -> normalized для теста
func normalizeAll(names []string) map[string]string {
	return NewNameNormalizer(nil).BuildNormalizedMap(names)
}

func TestFindGroups_NearIdenticalNames(t *testing.T) {
	names := []string{"Acme Inc", "Acme", "Acme Ltd", "Globex Corp"}

	clusterer := NewDuplicateClusterer(DefaultSimilarityThreshold)
	groups := clusterer.FindGroups(names, normalizeAll(names))

	if len(groups) != 1 {
		t.Fatalf("FindGroups returned %d groups, want 1", len(groups))
	}

	want := []string{"Acme Inc", "Acme", "Acme Ltd"}
	if !reflect.DeepEqual(groups[0].Names, want) {
		t.Errorf("group members = %v, want %v", groups[0].Names, want)
	}

	// Все три нормализуются в "acme" — уверенность максимальная
	if groups[0].Confidence != 1.0 {
		t.Errorf("group confidence = %f, want 1.0", groups[0].Confidence)
	}
}

func TestFindGroups_NoSingletonGroups(t *testing.T) {
	inputs := [][]string{
		{"Acme"},
		{"Acme", "Globex", "Initech"},
		{},
		{"Acme Inc", "Acme", "Globex Corp"},
	}

	clusterer := NewDuplicateClusterer(DefaultSimilarityThreshold)
	for _, names := range inputs {
		groups := clusterer.FindGroups(names, normalizeAll(names))
		for _, group := range groups {
			if len(group.Names) < 2 {
				t.Errorf("FindGroups(%v) emitted singleton group %v", names, group.Names)
			}
		}
	}
}

func TestFindGroups_DuplicateRawEntriesTrackedByPosition(t *testing.T) {
	// Одинаковые исходные строки на разных позициях — отдельные записи
	names := []string{"Acme", "Acme", "Acme"}

	clusterer := NewDuplicateClusterer(DefaultSimilarityThreshold)
	groups := clusterer.FindGroups(names, normalizeAll(names))

	if len(groups) != 1 {
		t.Fatalf("FindGroups returned %d groups, want 1", len(groups))
	}
	if len(groups[0].Names) != 3 {
		t.Errorf("group size = %d, want 3 (all positions placed)", len(groups[0].Names))
	}
}

func TestFindGroups_PartitionProperty(t *testing.T) {
	names := []string{"Acme Inc", "Acme", "Acme Ltd", "Acme", "Globex", "Globex Corp"}

	clusterer := NewDuplicateClusterer(DefaultSimilarityThreshold)
	groups := clusterer.FindGroups(names, normalizeAll(names))

	// Суммарное число размещенных позиций не превышает размер входа
	placedTotal := 0
	for _, group := range groups {
		placedTotal += len(group.Names)
	}
	if placedTotal > len(names) {
		t.Errorf("groups contain %d members, more than %d input positions", placedTotal, len(names))
	}
}

func TestFindGroups_ThresholdBoundary(t *testing.T) {
	normalized := map[string]string{
		"ab": "ab",
		"ac": "ac",
		"xy": "xy",
	}

	clusterer := NewDuplicateClusterer(1)

	// Расстояние ровно на пороге — группируются
	groups := clusterer.FindGroups([]string{"ab", "ac"}, normalized)
	if len(groups) != 1 {
		t.Errorf("distance == threshold: got %d groups, want 1", len(groups))
	}

	// Расстояние порог+1 — не группируются
	groups = clusterer.FindGroups([]string{"ab", "xy"}, normalized)
	if len(groups) != 0 {
		t.Errorf("distance == threshold+1: got %d groups, want 0", len(groups))
	}
}

func TestFindGroups_BreakOnFirstMismatch(t *testing.T) {
	// Жадный проход: первое несовпадение полностью прерывает поиск, поэтому
	// "aaab" после "zzzz" не найдется, хотя он близок к "aaaa".
	normalized := map[string]string{
		"aaaa": "aaaa",
		"zzzz": "zzzz",
		"aaab": "aaab",
	}
	names := []string{"aaaa", "zzzz", "aaab"}

	clusterer := NewDuplicateClusterer(1)
	groups := clusterer.FindGroups(names, normalized)

	if len(groups) != 0 {
		t.Errorf("got %d groups, want 0: forward scan must stop at the first mismatch", len(groups))
	}
}

func TestFindGroups_LengthGapBreaksScan(t *testing.T) {
	// Разница длин больше 10 прерывает проход целиком: совпадение на третьей
	// позиции не обнаруживается.
	normalized := map[string]string{
		"ab":                   "ab",
		"abcdefghijklmnopqrst": "abcdefghijklmnopqrst",
	}
	names := []string{"ab", "abcdefghijklmnopqrst", "ab"}

	clusterer := NewDuplicateClusterer(1)
	groups := clusterer.FindGroups(names, normalized)

	if len(groups) != 0 {
		t.Errorf("got %d groups, want 0: length gap must break the scan, not skip", len(groups))
	}
}

func TestFindGroups_MissingMapEntryTreatedAsEmpty(t *testing.T) {
	// Название без записи в таблице трактуется как пустая нормализованная
	// форма; два таких названия тривиально похожи.
	names := []string{"Unknown One", "Unknown Two"}

	clusterer := NewDuplicateClusterer(DefaultSimilarityThreshold)
	groups := clusterer.FindGroups(names, map[string]string{})

	if len(groups) != 1 {
		t.Fatalf("got %d groups, want 1", len(groups))
	}
	if len(groups[0].Names) != 2 {
		t.Errorf("group size = %d, want 2", len(groups[0].Names))
	}
}

func TestFindGroups_GroupOrderFollowsInput(t *testing.T) {
	normalized := map[string]string{
		"aa": "aa", "ab": "ab",
		"zz": "zz", "zy": "zy",
	}
	names := []string{"aa", "ab", "zz", "zy"}

	clusterer := NewDuplicateClusterer(1)
	groups := clusterer.FindGroups(names, normalized)

	if len(groups) != 2 {
		t.Fatalf("got %d groups, want 2", len(groups))
	}
	if groups[0].Names[0] != "aa" || groups[1].Names[0] != "zz" {
		t.Errorf("groups out of formation order: %v", groups)
	}
}

func TestFindGroups_ZeroThreshold(t *testing.T) {
	normalized := map[string]string{
		"Acme":  "acme",
		"Acme ": "acme",
		"Acmi":  "acmi",
	}
	names := []string{"Acme", "Acme ", "Acmi"}

	clusterer := NewDuplicateClusterer(0)
	groups := clusterer.FindGroups(names, normalized)

	// При нулевом пороге группируются только идентичные нормализованные формы
	if len(groups) != 1 {
		t.Fatalf("got %d groups, want 1", len(groups))
	}
	want := []string{"Acme", "Acme "}
	if !reflect.DeepEqual(groups[0].Names, want) {
		t.Errorf("group members = %v, want %v", groups[0].Names, want)
	}
}

func TestNewDuplicateClusterer_NegativeThreshold(t *testing.T) {
	clusterer := NewDuplicateClusterer(-5)
	if clusterer.Threshold() != DefaultSimilarityThreshold {
		t.Errorf("Threshold() = %d, want default %d", clusterer.Threshold(), DefaultSimilarityThreshold)
	}
}
