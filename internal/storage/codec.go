package storage

import (
	"encoding/json"
	"fmt"

	"duit/internal/core"
)

// EncodeLedger serializes the ledger to its persisted form: a JSON array of
// records with id/type/amount/category/description/date keys.
func EncodeLedger(txs []core.Transaction) (string, error) {
	if txs == nil {
		txs = []core.Transaction{}
	}
	data, err := json.Marshal(txs)
	if err != nil {
		return "", fmt.Errorf("encode ledger: %w", err)
	}
	return string(data), nil
}

// DecodeLedger parses a persisted blob back into transactions. Decoding is
// deliberately forgiving: records that cannot be parsed are dropped, and a
// blob that is not a JSON array at all yields an empty ledger. Losing data
// on corruption is accepted; crashing is not.
func DecodeLedger(payload string) []core.Transaction {
	var raw []json.RawMessage
	if err := json.Unmarshal([]byte(payload), &raw); err != nil {
		return nil
	}
	txs := make([]core.Transaction, 0, len(raw))
	for _, r := range raw {
		var t core.Transaction
		if err := json.Unmarshal(r, &t); err != nil {
			continue
		}
		txs = append(txs, t)
	}
	return txs
}
