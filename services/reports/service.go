package reports

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"creditpull-backend/lib/scrapers/creditreport"
	"creditpull-backend/lib/timezone"
	"creditpull-backend/services/reports/db"

	"github.com/mazen160/go-random"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("services/reports")

// reports kept per user; older ones are pruned on save
const keepRecentReports = 50

type Service struct {
	db  *sql.DB
	qry *db.Queries
}

func NewService(database *sql.DB) Service {
	return Service{
		db:  database,
		qry: db.New(database),
	}
}

type SavedReport struct {
	Id        string              `json:"id"`
	User      string              `json:"user"`
	SourceUrl string              `json:"source_url,omitempty"`
	ScrapedAt int64               `json:"scraped_at"`
	Report    creditreport.Report `json:"report"`
}

type ReportSummary struct {
	Id        string `json:"id"`
	SourceUrl string `json:"source_url,omitempty"`
	ScrapedAt int64  `json:"scraped_at"`
}

func (s Service) SaveReport(ctx context.Context, user, sourceUrl string, report creditreport.Report) (string, error) {
	ctx, span := tracer.Start(ctx, "SaveReport")
	defer span.End()

	span.SetAttributes(attribute.String("user", user))

	id, err := random.String(8)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return "", err
	}

	data, err := json.Marshal(report)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return "", err
	}

	scrapedAt := timezone.Now()
	if t, err := time.Parse(time.RFC3339, report.ScrapedAt); err == nil {
		scrapedAt = t
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return "", err
	}
	defer tx.Rollback()
	txqry := s.qry.WithTx(tx)

	err = txqry.CreateReport(ctx, db.CreateReportParams{
		ID:        id,
		User:      user,
		SourceUrl: sourceUrl,
		ScrapedAt: scrapedAt.Unix(),
		Data:      string(data),
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return "", err
	}

	err = txqry.PruneReports(ctx, db.PruneReportsParams{
		User: user,
		Keep: keepRecentReports,
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return "", err
	}

	err = tx.Commit()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return "", err
	}

	return id, nil
}

func (s Service) GetReport(ctx context.Context, id string) (SavedReport, error) {
	ctx, span := tracer.Start(ctx, "GetReport")
	defer span.End()

	span.SetAttributes(attribute.String("id", id))

	row, err := s.qry.GetReport(ctx, id)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return SavedReport{}, err
	}

	var report creditreport.Report
	err = json.Unmarshal([]byte(row.Data), &report)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return SavedReport{}, err
	}

	return SavedReport{
		Id:        row.ID,
		User:      row.User,
		SourceUrl: row.SourceUrl,
		ScrapedAt: row.ScrapedAt,
		Report:    report,
	}, nil
}

func (s Service) ListReports(ctx context.Context, user string) ([]ReportSummary, error) {
	ctx, span := tracer.Start(ctx, "ListReports")
	defer span.End()

	span.SetAttributes(attribute.String("user", user))

	rows, err := s.qry.ListReports(ctx, user)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	out := make([]ReportSummary, 0, len(rows))
	for _, r := range rows {
		out = append(out, ReportSummary{
			Id:        r.ID,
			SourceUrl: r.SourceUrl,
			ScrapedAt: r.ScrapedAt,
		})
	}
	return out, nil
}
