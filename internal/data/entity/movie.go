package entity

// Movie is cached metadata from the OMDb API. Rows are written once on the
// first lookup miss and never updated; staleness against OMDb is accepted.
// Source-provided fields are stored exactly as OMDb delivers them (strings
// like "142 min" or "8.6" stay strings).
type Movie struct {
	BaseSimple
	ImdbID    string  `db:"imdb_id"`
	Title     string  `db:"title"`
	Year      string  `db:"year"`
	PosterURL *string `db:"poster_url"`
	Plot      *string `db:"plot"`
	Director  *string `db:"director"`
	Actors    *string `db:"actors"`
	Genre     *string `db:"genre"`
	Rating    *string `db:"rating"`
	Runtime   *string `db:"runtime"`
	Language  *string `db:"language"`
	Country   *string `db:"country"`
}
