package usecase

import (
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"league/internal/models"
	"league/internal/modules/player"
	"league/pkg/lib/form"

	"github.com/xuri/excelize/v2"
	"gorm.io/datatypes"
)

const (
	colName        = "name"
	colBirthdate   = "birthdate"
	colHeight      = "height"
	colWeight      = "weight"
	colPosition    = "main position"
	colNationality = "nationality"
	colRarity      = "rarity"
	colSecondary1  = "secondary position 1"
	colSecondary2  = "secondary position 2"

	defaultJerseyNumber = "1"
)

var requiredColumns = []string{colName, colBirthdate, colHeight, colWeight, colPosition, colNationality, colRarity}

// ImportPlayers читает первый лист xlsx. Любая ошибка в любой строке отменяет весь импорт.
func (uc *PlayerUseCase) ImportPlayers(file io.Reader) (int, error) {
	op := "PlayerUseCase.ImportPlayers"
	log := uc.log.With(slog.String("op", op))

	f, err := excelize.OpenReader(file)
	if err != nil {
		log.Warn("failed to open spreadsheet", "error", err)
		return 0, &player.ImportError{Reason: "file is not a valid xlsx spreadsheet"}
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return 0, &player.ImportError{Reason: "spreadsheet has no sheets"}
	}

	rows, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		log.Warn("failed to read rows", "error", err)
		return 0, &player.ImportError{Reason: "failed to read first sheet"}
	}
	if len(rows) < 2 {
		log.Info("spreadsheet has no data rows")
		return 0, nil
	}

	header := indexHeader(rows[0])
	players := make([]*models.Player, 0, len(rows)-1)
	for i, row := range rows[1:] {
		if isBlank(row) {
			continue
		}
		p, err := parsePlayerRow(header, row, i+2)
		if err != nil {
			log.Warn("invalid row", "error", err)
			return 0, err
		}
		players = append(players, p)
	}

	count, err := uc.repo.CreatePlayers(players)
	if err != nil {
		log.Error("failed to insert imported players", "error", err)
		return 0, err
	}

	log.Info("players imported", slog.Int("count", count))
	return count, nil
}

func indexHeader(cells []string) map[string]int {
	header := make(map[string]int, len(cells))
	for i, c := range cells {
		key := strings.ToLower(strings.TrimSpace(c))
		if _, dup := header[key]; key != "" && !dup {
			header[key] = i
		}
	}
	return header
}

func isBlank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

func cell(header map[string]int, row []string, column string) string {
	idx, ok := header[column]
	if !ok || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func optional(header map[string]int, row []string, column string) *string {
	if v := cell(header, row, column); v != "" {
		return &v
	}
	return nil
}

func parsePlayerRow(header map[string]int, row []string, rowNum int) (*models.Player, error) {
	for _, column := range requiredColumns {
		if cell(header, row, column) == "" {
			return nil, &player.ImportError{Row: rowNum, Column: column, Reason: "required value is missing"}
		}
	}

	position := models.Position(cell(header, row, colPosition))
	if !position.IsValid() {
		return nil, &player.ImportError{Row: rowNum, Column: colPosition, Reason: "unknown position"}
	}

	birthDate, err := parseSheetDate(cell(header, row, colBirthdate))
	if err != nil {
		return nil, &player.ImportError{Row: rowNum, Column: colBirthdate, Reason: "invalid date"}
	}

	height, err := parseSheetFloat(cell(header, row, colHeight))
	if err != nil {
		return nil, &player.ImportError{Row: rowNum, Column: colHeight, Reason: "must be a number"}
	}
	weight, err := parseSheetFloat(cell(header, row, colWeight))
	if err != nil {
		return nil, &player.ImportError{Row: rowNum, Column: colWeight, Reason: "must be a number"}
	}

	nationality := cell(header, row, colNationality)
	rarity := cell(header, row, colRarity)
	date := datatypes.Date(birthDate)

	return &models.Player{
		Name:               cell(header, row, colName),
		JerseyNumber:       defaultJerseyNumber,
		Position:           position,
		BirthDate:          &date,
		Nationality:        &nationality,
		Height:             &height,
		Weight:             &weight,
		SecondaryPosition1: optional(header, row, colSecondary1),
		SecondaryPosition2: optional(header, row, colSecondary2),
		Rarity:             &rarity,
	}, nil
}

// parseSheetDate понимает серийный номер Excel и текстовые даты.
func parseSheetDate(v string) (time.Time, error) {
	if serial, err := strconv.ParseFloat(v, 64); err == nil {
		return excelize.ExcelDateToTime(serial, false)
	}
	return form.ParseDate(v)
}

func parseSheetFloat(v string) (float64, error) {
	return strconv.ParseFloat(strings.Replace(v, ",", ".", 1), 64)
}
