// Генератор тестовых списков названий компаний. Для части сгенерированных
// компаний добавляются почти-дубликаты: варианты с ОПФ, другим регистром и
// одиночными опечатками. Результат — текстовый файл, одно название на строку,
// пригодный для find_duplicates.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/brianvoe/gofakeit/v6"
)

func main() {
	count := flag.Int("count", 1000, "количество базовых компаний")
	output := flag.String("output", "test_names.txt", "путь к файлу результата")
	seed := flag.Int64("seed", 0, "seed генератора")
	flag.Parse()

	gofakeit.Seed(*seed)

	file, err := os.Create(*output)
	if err != nil {
		log.Fatalf("Failed to create output file: %v", err)
	}
	defer file.Close()

	writer := bufio.NewWriter(file)
	defer writer.Flush()

	total := 0
	for i := 0; i < *count; i++ {
		base := gofakeit.Company()
		total += writeVariants(writer, base)
	}

	fmt.Printf("Generated %d names (%d base companies) -> %s\n", total, *count, *output)
}

// writeVariants пишет базовое название и случайный набор его вариантов
func writeVariants(w *bufio.Writer, base string) int {
	names := []string{base}

	// Варианты с ОПФ
	if gofakeit.Bool() {
		names = append(names, base+" "+gofakeit.RandomString([]string{"Inc", "Ltd", "LLC", "GmbH"}))
	}
	if gofakeit.Number(0, 9) < 3 {
		names = append(names, "ООО "+base)
	}

	// Вариант с другим регистром
	if gofakeit.Number(0, 9) < 2 {
		names = append(names, strings.ToUpper(base))
	}

	// Вариант с одиночной опечаткой
	if gofakeit.Number(0, 9) < 3 {
		if typo := makeTypo(base); typo != base {
			names = append(names, typo)
		}
	}

	for _, name := range names {
		fmt.Fprintln(w, name)
	}
	return len(names)
}

// makeTypo заменяет одну случайную букву названия
func makeTypo(name string) string {
	runes := []rune(name)
	if len(runes) < 3 {
		return name
	}

	pos := gofakeit.Number(1, len(runes)-2)
	if runes[pos] == ' ' {
		return name
	}

	replacement := rune(gofakeit.RandomString([]string{"a", "e", "i", "o", "u", "s", "t", "n"})[0])
	if runes[pos] == replacement {
		return name
	}
	runes[pos] = replacement

	return string(runes)
}
