package models

// Challenge is an immutable song-gate entry: a snippet tied to an artist and
// the set of answer strings that pass it.
type Challenge struct {
	Key     string   `yaml:"key" json:"key"`
	Artist  string   `yaml:"-" json:"artist"`
	Snippet string   `yaml:"snippet" json:"snippet"`
	Answers []string `yaml:"answers" json:"-"`
}
