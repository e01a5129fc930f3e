package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mirit/psyche/ent"
	"github.com/mirit/psyche/ent/resultsnapshot"
	"github.com/mirit/psyche/internal/scoring"
)

// resultRepo implements ResultRepo using the ent client.
type resultRepo struct {
	client *ent.Client
}

func (r *resultRepo) Save(ctx context.Context, res *Result) error {
	scoresMap, err := scoresToMap(res.Scores)
	if err != nil {
		return fmt.Errorf("marshal scores: %w", err)
	}

	_, err = r.client.ResultSnapshot.Create().
		SetResultID(res.ResultID).
		SetSessionID(res.SessionID).
		SetAssessmentID(res.AssessmentID).
		SetTypeCode(res.Scores.TypeCode).
		SetFlagged(res.Scores.Flagged).
		SetTakenAt(res.TakenAt).
		SetScores(scoresMap).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save result: %w", err)
	}
	return nil
}

func (r *resultRepo) Latest(ctx context.Context, assessmentID string) (*Result, error) {
	row, err := r.client.ResultSnapshot.Query().
		Where(resultsnapshot.AssessmentID(assessmentID)).
		Order(ent.Desc(resultsnapshot.FieldTakenAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query latest result: %w", err)
	}
	return rowToResult(row)
}

func (r *resultRepo) List(ctx context.Context, assessmentID string, limit int) ([]*Result, error) {
	q := r.client.ResultSnapshot.Query().
		Order(ent.Desc(resultsnapshot.FieldTakenAt))
	if assessmentID != "" {
		q = q.Where(resultsnapshot.AssessmentID(assessmentID))
	}
	if limit > 0 {
		q = q.Limit(limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query results: %w", err)
	}

	results := make([]*Result, 0, len(rows))
	for _, row := range rows {
		res, err := rowToResult(row)
		if err != nil {
			return nil, err
		}
		results = append(results, res)
	}
	return results, nil
}

func scoresToMap(scores scoring.TestScores) (map[string]any, error) {
	raw, err := json.Marshal(scores)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	return m, nil
}

func rowToResult(row *ent.ResultSnapshot) (*Result, error) {
	raw, err := json.Marshal(row.Scores)
	if err != nil {
		return nil, fmt.Errorf("remarshal scores: %w", err)
	}
	var scores scoring.TestScores
	if err := json.Unmarshal(raw, &scores); err != nil {
		return nil, fmt.Errorf("decode scores: %w", err)
	}
	return &Result{
		ResultID:     row.ResultID,
		SessionID:    row.SessionID,
		AssessmentID: row.AssessmentID,
		TakenAt:      row.TakenAt,
		Scores:       scores,
	}, nil
}
