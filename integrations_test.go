package rangehighlight

import (
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
)

type fixedRange int

func (r fixedRange) SprinklerRange() int { return int(r) }

func TestApplyIntegrations(t *testing.T) {
	stock := NewDefaultShapes().PrismaticSprinkler

	tests := []struct {
		name      string
		lookup    ProviderLookup
		want      Shape
		wantLevel logrus.Level
		wantLogs  int
	}{
		{"nil lookup", nil, stock, 0, 0},
		{"absent", func(string) (any, bool) { return nil, false }, stock, 0, 0},
		{"wrong type", func(string) (any, bool) { return "nope", true }, stock, logrus.WarnLevel, 1},
		{"provider", func(id string) (any, bool) {
			if id != PrismaticToolsID {
				return nil, false
			}
			return fixedRange(5), true
		}, GenerateShape(5, true, MetricSquare), logrus.InfoLevel, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, hook := logtest.NewNullLogger()
			shapes := NewDefaultShapes()
			ApplyIntegrations(shapes, tt.lookup, logger)

			if !shapes.PrismaticSprinkler.Equal(tt.want) {
				t.Errorf("PrismaticSprinkler radius = %d, want %d", shapes.PrismaticSprinkler.Radius(), tt.want.Radius())
			}
			if got := len(hook.AllEntries()); got != tt.wantLogs {
				t.Fatalf("got %d log entries, want %d", got, tt.wantLogs)
			}
			if tt.wantLogs > 0 && hook.LastEntry().Level != tt.wantLevel {
				t.Errorf("level = %v, want %v", hook.LastEntry().Level, tt.wantLevel)
			}
		})
	}
}
