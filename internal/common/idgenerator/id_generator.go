// Package idgenerator allocates storage identifiers for documents created by
// a sync run. An identifier is a prefix, an epoch-millis timestamp, and a
// base64 raw-url encoded UUID, so ids stay unique across runs and sort
// roughly by creation time.
package idgenerator

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Storage id prefixes per document type.
const (
	PrefixAccount        = "acc"
	PrefixTransaction    = "trx"
	PrefixBalanceHistory = "blh"
	PrefixRun            = "run"
)

type Generator interface {
	Generate(prefixes ...string) string
}

type IDGenerator struct{}

func New() Generator {
	return &IDGenerator{}
}

// Generate combines the prefix string, a timestamp, and a base64-encoded
// UUID. With no prefix the timestamp+UUID pair is returned bare.
func (g *IDGenerator) Generate(prefixes ...string) string {
	prefix := strings.Join(prefixes, "-")
	epocTime := getEPOCTime()
	generatedUUID := getUUID()
	encodedUUID := rawURLEncodedUUID(generatedUUID)
	generatedID := fmt.Sprintf("%s-%d%s", prefix, epocTime, encodedUUID)

	if len(prefixes) == 0 || prefix == "" {
		generatedID = fmt.Sprintf("%d%s", epocTime, encodedUUID)
	}

	return generatedID
}

func getEPOCTime() int64 {
	return time.Now().UnixMilli()
}

func getUUID() uuid.UUID {
	return uuid.New()
}

func rawURLEncodedUUID(id uuid.UUID) string {
	uuidInBytes := id[:]
	return base64.RawURLEncoding.EncodeToString(uuidInBytes)
}
