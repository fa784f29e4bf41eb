package normalization

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/xuri/excelize/v2"
)

// ExportFormat формат экспорта
type ExportFormat string

const (
	FormatJSON  ExportFormat = "json"
	FormatCSV   ExportFormat = "csv"
	FormatExcel ExportFormat = "excel"
)

// ExportedGroup экспортируемая группа дубликатов
type ExportedGroup struct {
	Index      int      `json:"index"`
	Confidence float64  `json:"confidence"`
	Names      []string `json:"names"`
}

// GroupExporter экспортер результатов кластеризации
type GroupExporter struct{}

// NewGroupExporter создает новый экспортер групп
func NewGroupExporter() *GroupExporter {
	return &GroupExporter{}
}

// ExportToJSON экспортирует группы в JSON
func (e *GroupExporter) ExportToJSON(filename string, groups []DuplicateGroup) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")

	result := map[string]interface{}{
		"exported_at":  time.Now().Format(time.RFC3339),
		"total_groups": len(groups),
		"groups":       ExportedGroups(groups),
	}

	if err := encoder.Encode(result); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}

	return nil
}

// ExportToCSV экспортирует группы в CSV. Каждая строка — один член группы.
func (e *GroupExporter) ExportToCSV(filename string, groups []DuplicateGroup) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	return e.WriteCSV(file, groups)
}

// WriteCSV пишет группы в CSV в переданный writer. Каждая строка — один член
// группы.
func (e *GroupExporter) WriteCSV(w io.Writer, groups []DuplicateGroup) error {
	writer := csv.NewWriter(w)
	defer writer.Flush()

	headers := []string{"Group", "Name", "Confidence"}
	if err := writer.Write(headers); err != nil {
		return fmt.Errorf("failed to write headers: %w", err)
	}

	for groupIdx, group := range groups {
		for _, name := range group.Names {
			record := []string{
				strconv.Itoa(groupIdx + 1),
				name,
				fmt.Sprintf("%.2f", group.Confidence),
			}
			if err := writer.Write(record); err != nil {
				return fmt.Errorf("failed to write record: %w", err)
			}
		}
	}

	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV: %w", err)
	}

	return nil
}

// ExportToExcel экспортирует группы в Excel
func (e *GroupExporter) ExportToExcel(filename string, groups []DuplicateGroup) error {
	f, err := e.ExcelWorkbook(groups)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.SaveAs(filename); err != nil {
		return fmt.Errorf("failed to save Excel file: %w", err)
	}

	return nil
}

// ExcelWorkbook формирует книгу Excel с группами дубликатов. Вызывающий код
// отвечает за закрытие книги.
func (e *GroupExporter) ExcelWorkbook(groups []DuplicateGroup) (*excelize.File, error) {
	f := excelize.NewFile()

	sheetName := "Duplicate Groups"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}

	// Стиль заголовков
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	headers := []string{"Group", "Name", "Confidence"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, header)
		f.SetCellStyle(sheetName, cell, cell, headerStyle)
	}

	row := 2
	for groupIdx, group := range groups {
		for _, name := range group.Names {
			f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), groupIdx+1)
			f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), name)
			f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), group.Confidence)
			row++
		}
	}

	f.SetColWidth(sheetName, "A", "A", 10)
	f.SetColWidth(sheetName, "B", "B", 40)
	f.SetColWidth(sheetName, "C", "C", 12)

	f.SetActiveSheet(index)

	// Удаляем пустой лист по умолчанию
	if sheetName != "Sheet1" {
		f.DeleteSheet("Sheet1")
	}

	return f, nil
}

// Export экспортирует группы в указанном формате
func (e *GroupExporter) Export(format ExportFormat, filename string, groups []DuplicateGroup) error {
	switch format {
	case FormatJSON:
		return e.ExportToJSON(filename, groups)
	case FormatCSV:
		return e.ExportToCSV(filename, groups)
	case FormatExcel:
		return e.ExportToExcel(filename, groups)
	default:
		return fmt.Errorf("unsupported export format: %s", format)
	}
}

// ExportedGroups преобразует группы в экспортируемое представление с
// единичной нумерацией.
func ExportedGroups(groups []DuplicateGroup) []ExportedGroup {
	exported := make([]ExportedGroup, len(groups))
	for i, group := range groups {
		exported[i] = ExportedGroup{
			Index:      i + 1,
			Confidence: group.Confidence,
			Names:      group.Names,
		}
	}
	return exported
}
