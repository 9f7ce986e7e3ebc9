package llm

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"
)

const defaultDescription = "Freshly prepared delicious dish"

// minDescriptionWords is the shortest model answer accepted as a description.
const minDescriptionWords = 3

type Describer struct {
	client Client
	log    logrus.FieldLogger
}

func NewDescriber(client Client, log logrus.FieldLogger) *Describer {
	return &Describer{client: client, log: log}
}

// Describe never fails. Model errors and too-short answers fall back to a
// generic line built from the dish name.
func (d *Describer) Describe(ctx context.Context, name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return defaultDescription
	}

	fallback := "Tasty " + name + " dish"

	text, err := d.client.Generate(ctx, BuildDescriptionPrompt(name))
	if err != nil {
		d.log.WithError(err).WithField("name", name).Warn("ai description failed")
		return fallback
	}

	text = strings.TrimSpace(text)
	if len(strings.Fields(text)) < minDescriptionWords {
		return fallback
	}
	return text
}
