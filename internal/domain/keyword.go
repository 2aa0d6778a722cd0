package domain

type KeywordRecord struct {
	Term         string
	Volume       int64 // monthly searches, never negative
	SourceID     string
	Category     string // self source only
	CategoryIcon string
}
