package severity

import (
	"bytes"
	"encoding/json"
	"math"

	"gopkg.in/yaml.v3"
)

// GroupResult is the outcome of one profile's session.
type GroupResult struct {
	Rewards    []float64 `json:"rewards" yaml:"rewards"`
	MeanReward float64   `json:"mean_reward" yaml:"mean_reward"`
}

// Summary maps profile names to results and remembers the order in which
// names were first inserted.
type Summary struct {
	names   []string
	results map[string]GroupResult
}

func newSummary(capacity int) *Summary {
	return &Summary{
		names:   make([]string, 0, capacity),
		results: make(map[string]GroupResult, capacity),
	}
}

// set stores r under name and reports whether an earlier entry was replaced.
// A replaced name keeps its original position.
func (s *Summary) set(name string, r GroupResult) bool {
	_, exists := s.results[name]
	if !exists {
		s.names = append(s.names, name)
	}
	s.results[name] = r
	return exists
}

// Names returns profile names in insertion order.
func (s *Summary) Names() []string {
	return append([]string(nil), s.names...)
}

// Get returns the result for name.
func (s *Summary) Get(name string) (GroupResult, bool) {
	r, ok := s.results[name]
	return r, ok
}

// Len returns the number of distinct profile names.
func (s *Summary) Len() int {
	return len(s.names)
}

// Map returns the results as a plain map.
func (s *Summary) Map() map[string]GroupResult {
	out := make(map[string]GroupResult, len(s.results))
	for k, v := range s.results {
		out[k] = v
	}
	return out
}

// MarshalJSON encodes the summary as {name: {rewards, mean_reward}} with keys
// in insertion order. Non-finite values, such as the NaN mean of an empty
// session, are encoded as null.
func (s *Summary) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range s.names {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')

		r := s.results[name]
		rewards := make([]*float64, len(r.Rewards))
		for j, v := range r.Rewards {
			rewards[j] = finiteOrNil(v)
		}
		val, err := json.Marshal(struct {
			Rewards    []*float64 `json:"rewards"`
			MeanReward *float64   `json:"mean_reward"`
		}{Rewards: rewards, MeanReward: finiteOrNil(r.MeanReward)})
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalYAML encodes the summary as an ordered YAML mapping.
func (s *Summary) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, name := range s.names {
		var value yaml.Node
		if err := value.Encode(s.results[name]); err != nil {
			return nil, err
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: name},
			&value,
		)
	}
	return node, nil
}

func finiteOrNil(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

// mean returns the arithmetic mean of values, or NaN when values is empty.
func mean(values []float64) float64 {
	if len(values) == 0 {
		return math.NaN()
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
