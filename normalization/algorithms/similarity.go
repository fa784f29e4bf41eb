// Package algorithms содержит строковые метрики, используемые при поиске
// дубликатов названий.
package algorithms

// LevenshteinDistance вычисляет классическое расстояние Левенштейна между
// строками. Сравнение идет по кодовым точкам Unicode; вставка, удаление и
// замена стоят по 1. Метрика симметрична, расстояние строки до самой себя
// равно нулю.
func LevenshteinDistance(s1, s2 string) int {
	r1 := []rune(s1)
	r2 := []rune(s2)
	len1 := len(r1)
	len2 := len(r2)

	if len1 == 0 {
		return len2
	}
	if len2 == 0 {
		return len1
	}

	// Оптимизированный алгоритм с одним массивом вместо полной матрицы
	column := make([]int, len1+1)
	for i := 1; i <= len1; i++ {
		column[i] = i
	}

	for x := 1; x <= len2; x++ {
		column[0] = x
		lastDiag := x - 1
		for y := 1; y <= len1; y++ {
			oldDiag := column[y]
			cost := 0
			if r1[y-1] != r2[x-1] {
				cost = 1
			}
			column[y] = min3(column[y]+1, column[y-1]+1, lastDiag+cost)
			lastDiag = oldDiag
		}
	}

	return column[len1]
}

// LevenshteinSimilarity вычисляет схожесть строк на основе расстояния
// Левенштейна. Возвращает значение от 0.0 до 1.0.
func LevenshteinSimilarity(s1, s2 string) float64 {
	distance := LevenshteinDistance(s1, s2)
	maxLen := len([]rune(s1))
	if len([]rune(s2)) > maxLen {
		maxLen = len([]rune(s2))
	}

	if maxLen == 0 {
		return 1.0
	}

	return 1.0 - float64(distance)/float64(maxLen)
}

// min3 возвращает минимальное из трех чисел
func min3(a, b, c int) int {
	if a < b {
		if a < c {
			return a
		}
		return c
	}
	if b < c {
		return b
	}
	return c
}
