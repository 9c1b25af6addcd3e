package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Aashish23092/finguide-ai/dto"
	"github.com/Aashish23092/finguide-ai/utils"
	"github.com/google/uuid"
)

// ParseRecords decodes the cleaned extraction output. Numbers are kept as
// json.Number so amounts are not rounded before coercion. The output must be
// a JSON array; elements that are not objects are skipped.
func ParseRecords(raw string) ([]dto.ExtractedRecord, error) {
	var elems []json.RawMessage
	if err := json.Unmarshal([]byte(raw), &elems); err != nil {
		return nil, fmt.Errorf("%w: %v", dto.ErrMalformedExtractionOutput, err)
	}

	records := make([]dto.ExtractedRecord, 0, len(elems))
	for _, elem := range elems {
		dec := json.NewDecoder(bytes.NewReader(elem))
		dec.UseNumber()

		var rec dto.ExtractedRecord
		if err := dec.Decode(&rec); err != nil {
			continue
		}
		records = append(records, rec)
	}
	return records, nil
}

// Normalize turns extracted rows into transactions. Missing or unreadable
// dates become now, missing descriptions become "N/A", and rows whose amount
// is not strictly positive are dropped. Tax attributes are never inferred.
// Order is preserved.
func Normalize(records []dto.ExtractedRecord, now time.Time) []dto.Transaction {
	out := make([]dto.Transaction, 0, len(records))
	for _, rec := range records {
		amount := utils.CoerceAmount(rec.Amount)
		if !(amount > 0) {
			continue
		}

		date := now
		if s := utils.CoerceString(rec.Date); s != "" {
			if parsed, err := utils.ParseDate(s); err == nil {
				date = parsed
			}
		}

		desc := utils.CoerceString(rec.Description)
		if desc == "" {
			desc = utils.Placeholder
		}

		out = append(out, dto.Transaction{
			ID:              uuid.NewString(),
			Date:            date,
			Amount:          amount,
			Category:        dto.DefaultImportCategory,
			Description:     desc,
			IsTaxDeductible: false,
			GSTRate:         0,
		})
	}
	return out
}
