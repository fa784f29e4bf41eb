// Утилита поиска дубликатов названий компаний в текстовом файле.
// Файл читается построчно: одна строка — одно название.
//
// Пример использования:
//
//	find_duplicates -input names.txt
//	find_duplicates -input names.txt -threshold 2 -format excel -output groups.xlsx
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"dedupserver/normalization"
)

func main() {
	inputPath := flag.String("input", "", "путь к файлу с названиями (одно на строку)")
	threshold := flag.Int("threshold", normalization.DefaultSimilarityThreshold, "порог расстояния Левенштейна")
	format := flag.String("format", "text", "формат вывода: text, json, csv, excel")
	outputPath := flag.String("output", "", "путь к файлу результата (для json/csv/excel)")
	flag.Parse()

	if *inputPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	names, err := readNames(*inputPath)
	if err != nil {
		log.Fatalf("Ошибка чтения файла %s: %v", *inputPath, err)
	}

	normalizer := normalization.NewNameNormalizer(nil)
	normalized := normalizer.BuildNormalizedMap(names)

	clusterer := normalization.NewDuplicateClusterer(*threshold)
	groups := clusterer.FindGroups(names, normalized)

	if *format == "text" {
		printGroups(groups)
		return
	}

	if *outputPath == "" {
		log.Fatalf("Для формата %s нужно указать -output", *format)
	}

	exporter := normalization.NewGroupExporter()
	if err := exporter.Export(normalization.ExportFormat(*format), *outputPath, groups); err != nil {
		log.Fatalf("Ошибка экспорта: %v", err)
	}
	fmt.Printf("Результат сохранен в %s (групп: %d)\n", *outputPath, len(groups))
}

// readNames читает названия из файла, по одному на строку. Пробелы по краям
// обрезаются, пустые строки пропускаются.
func readNames(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var names []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		name := strings.TrimSpace(scanner.Text())
		if name != "" {
			names = append(names, name)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return names, nil
}

// printGroups печатает группы с единичной нумерацией и итоговым количеством
func printGroups(groups []normalization.DuplicateGroup) {
	for i, group := range groups {
		fmt.Printf("Группа %d:\n", i+1)
		for _, name := range group.Names {
			fmt.Printf("  - %s\n", name)
		}
	}
	fmt.Printf("Всего групп похожих названий: %d\n", len(groups))
}
