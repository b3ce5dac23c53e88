package export

import (
	"fmt"
	"io"
	"time"

	"github.com/tealeg/xlsx"

	apperrors "voice-enhancer/internal/app/errors"
	"voice-enhancer/internal/app/model"
)

// SheetName is the worksheet holding the history.
const SheetName = "Transcriptions"

// Headers are the column titles, in order.
var Headers = []string{"ID", "Created At", "Persona", "Agent", "Original Text", "Enhanced Text"}

// Workbook builds a workbook with one row per record, in the given order.
func Workbook(transcriptions []model.Transcription) (*xlsx.File, error) {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet(SheetName)
	if err != nil {
		return nil, err
	}

	headerRow := sheet.AddRow()
	for _, h := range Headers {
		headerRow.AddCell().Value = h
	}

	for _, t := range transcriptions {
		row := sheet.AddRow()
		row.AddCell().Value = fmt.Sprint(t.ID)
		row.AddCell().Value = t.CreatedAt.UTC().Format(time.RFC3339)
		row.AddCell().Value = t.Persona
		row.AddCell().Value = t.Agent
		row.AddCell().Value = t.OriginalText
		row.AddCell().Value = t.EnhancedText
	}
	return file, nil
}

// ToExcel writes the workbook to w.
func ToExcel(transcriptions []model.Transcription, w io.Writer) error {
	file, err := Workbook(transcriptions)
	if err != nil {
		return err
	}
	if err := file.Write(w); err != nil {
		return apperrors.Wrap(err, apperrors.ErrFileWriteFailed.Error())
	}
	return nil
}

// SaveExcel writes the workbook to outputFilePath.
func SaveExcel(transcriptions []model.Transcription, outputFilePath string) error {
	file, err := Workbook(transcriptions)
	if err != nil {
		return err
	}
	if err := file.Save(outputFilePath); err != nil {
		return apperrors.Wrap(err, apperrors.ErrFileWriteFailed.Error())
	}
	return nil
}
