package queue

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownModel is returned by New for an unrecognised model kind.
var ErrUnknownModel = errors.New("unknown queue model")

// Kind names a queueing model.
type Kind string

const (
	KindMM1         Kind = "mm1"
	KindMD1         Kind = "md1"
	KindMG1         Kind = "mg1"
	KindMMc         Kind = "mmc"
	KindMMcPriority Kind = "mmc-priority"
)

// Kinds lists every supported model kind.
var Kinds = []Kind{KindMM1, KindMD1, KindMG1, KindMMc, KindMMcPriority}

// ParseKind normalises a model name ("M/M/c", "MMc", "mmc") to a Kind.
func ParseKind(name string) (Kind, error) {
	normalized := strings.ToLower(strings.NewReplacer("/", "", "_", "-", " ", "").Replace(name))
	switch normalized {
	case "mm1":
		return KindMM1, nil
	case "md1":
		return KindMD1, nil
	case "mg1":
		return KindMG1, nil
	case "mmc":
		return KindMMc, nil
	case "mmc-priority", "mmcpriority", "priority":
		return KindMMcPriority, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownModel, name)
	}
}

// Scenario describes a model and its parameters.
type Scenario struct {
	// Model is the model kind.
	Model Kind `json:"model"`

	// Lamda holds the arrival rate of each stream (or priority class).
	Lamda []float64 `json:"lamda"`

	// Mu is the service rate per server.
	Mu float64 `json:"mu"`

	// SigmaS is the service-time standard deviation (mg1 only).
	SigmaS float64 `json:"sigma_s,omitempty"`

	// Servers is the server count (mmc and mmc-priority only).
	Servers int `json:"servers,omitempty"`
}

// New builds the model described by s. Bad numeric parameters do not fail;
// they produce an invalid model.
func New(s Scenario) (Model, error) {
	switch s.Model {
	case KindMM1:
		return newMM1(s.Mu, s.Lamda...), nil
	case KindMD1:
		return newMD1(s.Mu, s.Lamda...), nil
	case KindMG1:
		return newMG1(s.Mu, s.SigmaS, s.Lamda...), nil
	case KindMMc:
		return newMMc("MMc", s.Mu, s.Servers, s.Lamda...), nil
	case KindMMcPriority:
		return NewMMcPriority(s.Lamda, s.Mu, s.Servers), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownModel, s.Model)
	}
}
