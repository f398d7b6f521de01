package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newBufferedLogger(debug bool) (logger.Interface, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	base := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return newSlogLogger(base, debug), buf
}

func query() (string, int64) {
	return `SELECT * FROM "state_entries" WHERE key = 'cart'`, 1
}

func TestSlogLogger_Trace(t *testing.T) {
	tests := []struct {
		name    string
		debug   bool
		begin   time.Time
		err     error
		want    string
		wantNot string
	}{
		{name: "query failure", begin: time.Now(), err: errors.New("boom"), want: "State store query failed"},
		{name: "missing key is quiet", begin: time.Now(), err: gorm.ErrRecordNotFound, wantNot: "failed"},
		{name: "slow query", begin: time.Now().Add(-time.Second), want: "State store slow query"},
		{name: "fast query hidden without debug", begin: time.Now(), wantNot: "State store query"},
		{name: "fast query logged in debug", debug: true, begin: time.Now(), want: "State store query"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, buf := newBufferedLogger(tt.debug)
			l.Trace(context.Background(), tt.begin, query, tt.err)

			if tt.want != "" {
				assert.Contains(t, buf.String(), tt.want)
			}
			if tt.wantNot != "" {
				assert.NotContains(t, buf.String(), tt.wantNot)
			}
		})
	}
}

func TestSlogLogger_LogModeSilences(t *testing.T) {
	l, buf := newBufferedLogger(true)

	l.LogMode(logger.Silent).Trace(context.Background(), time.Now(), query, errors.New("boom"))
	l.LogMode(logger.Silent).Error(context.Background(), "lost %s", "connection")
	assert.Empty(t, buf.String())

	l.Warn(context.Background(), "retrying %d", 2)
	assert.Contains(t, buf.String(), "retrying 2")
}
