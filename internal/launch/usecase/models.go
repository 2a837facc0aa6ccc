package usecase

import "github.com/shandysiswandi/golaunch/internal/launch/entity"

type SelectOption struct {
	Label string
	Value string
}

type SliderMark struct {
	Value float64
	Label string
}

type SliderOptions struct {
	Min   float64
	Max   float64
	Step  float64
	Value entity.PayloadRange
	Marks []SliderMark
}

type OptionsResult struct {
	Sites       []SelectOption
	DefaultSite string
	Payload     SliderOptions
}

type DatasetResult struct {
	ID       int64
	Source   string
	Format   entity.Format
	Stats    entity.LoadStats
	Records  int
	Sites    []string
	Bounds   entity.PayloadRange
	LoadedAt int64
}
