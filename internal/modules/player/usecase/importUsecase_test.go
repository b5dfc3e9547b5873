package usecase_test

import (
	"bytes"
	"testing"

	"league/internal/models"
	"league/internal/modules/player"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

var importHeader = []interface{}{
	"Name", "Birthdate", "Height", "Weight", "Main position", "Nationality", "Rarity",
	"Secondary position 1", "Secondary position 2",
}

func spreadsheet(t *testing.T, rows ...[]interface{}) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	all := append([][]interface{}{importHeader}, rows...)
	for i, row := range all {
		cellRef, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cellRef, &row))
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf
}

func TestImportPlayers(t *testing.T) {
	f := newFixture(t)

	file := spreadsheet(t,
		[]interface{}{"Ana", "1999-04-12", "185", "78", "Forward", "Brazil", "Rare", "Midfielder", ""},
		[]interface{}{"Bo", "2001-01-30", "172,5", "70", "Goalkeeper", "Spain", "Common"},
		[]interface{}{"Cid", "1995-07-01", 190, 88, "Defender", "Italy", "Epic"},
	)

	count, err := f.uc.ImportPlayers(file)
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	var players []models.Player
	require.NoError(t, f.db.Order("id ASC").Find(&players).Error)
	require.Len(t, players, 3)

	ana := players[0]
	assert.Equal(t, "Ana", ana.Name)
	assert.Equal(t, "1", ana.JerseyNumber)
	assert.Equal(t, models.PositionForward, ana.Position)
	assert.Nil(t, ana.Description)
	require.NotNil(t, ana.Height)
	assert.Equal(t, 185.0, *ana.Height)
	require.NotNil(t, ana.SecondaryPosition1)
	assert.Equal(t, "Midfielder", *ana.SecondaryPosition1)
	assert.Nil(t, ana.SecondaryPosition2)
	require.NotNil(t, ana.BirthDate)

	require.NotNil(t, players[1].Height)
	assert.Equal(t, 172.5, *players[1].Height)
}

func TestImportPlayers_MissingRequiredValue(t *testing.T) {
	f := newFixture(t)

	file := spreadsheet(t,
		[]interface{}{"Ana", "1999-04-12", "185", "78", "Forward", "Brazil", "Rare"},
		[]interface{}{"Bo", "2001-01-30", "172", "70", "Goalkeeper", "Spain", ""},
	)

	_, err := f.uc.ImportPlayers(file)
	require.Error(t, err)
	assert.ErrorIs(t, err, player.ErrInvalidImport)

	var importErr *player.ImportError
	require.ErrorAs(t, err, &importErr)
	assert.Equal(t, 3, importErr.Row)
	assert.Equal(t, "rarity", importErr.Column)

	count, err := f.uc.CountPlayers()
	require.NoError(t, err)
	assert.Zero(t, count, "no rows must be inserted when any row is invalid")
}

func TestImportPlayers_InvalidPosition(t *testing.T) {
	f := newFixture(t)

	file := spreadsheet(t,
		[]interface{}{"Ana", "1999-04-12", "185", "78", "Striker", "Brazil", "Rare"},
	)

	_, err := f.uc.ImportPlayers(file)
	assert.ErrorIs(t, err, player.ErrInvalidImport)
}

func TestImportPlayers_NotASpreadsheet(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.ImportPlayers(bytes.NewBufferString("name,height\nAna,185\n"))
	assert.ErrorIs(t, err, player.ErrInvalidImport)
}

func TestImportPlayers_HeaderOnly(t *testing.T) {
	f := newFixture(t)

	count, err := f.uc.ImportPlayers(spreadsheet(t))
	require.NoError(t, err)
	assert.Zero(t, count)
}
