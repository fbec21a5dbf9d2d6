package rangehighlight

import "github.com/sirupsen/logrus"

// PrismaticToolsID is the provider id queried for sprinkler range overrides.
const PrismaticToolsID = "stokastic.PrismaticTools"

// ProviderLookup returns the capability published under id by another
// component, if any.
type ProviderLookup func(id string) (any, bool)

// SprinklerRangeProvider publishes a sprinkler radius.
type SprinklerRangeProvider interface {
	SprinklerRange() int
}

// ApplyIntegrations adjusts shapes from optional providers. It runs once at
// init; missing or mistyped providers leave shapes unchanged.
func ApplyIntegrations(shapes *DefaultShapes, lookup ProviderLookup, log logrus.FieldLogger) {
	if lookup == nil {
		return
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	v, ok := lookup(PrismaticToolsID)
	if !ok {
		return
	}
	p, ok := v.(SprinklerRangeProvider)
	if !ok {
		log.WithField("provider", PrismaticToolsID).Warn("provider does not publish a sprinkler range")
		return
	}
	r := p.SprinklerRange()
	shapes.PrismaticSprinkler = GenerateShape(r, true, MetricSquare)
	log.WithFields(logrus.Fields{"provider": PrismaticToolsID, "radius": r}).Info("prismatic sprinkler range applied")
}
