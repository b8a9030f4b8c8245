package grammar

type Protein struct {
	Alternation *Alternation `parser:"@@"`
}

type Alternation struct {
	Branches []*Concatenation `parser:"@@ { \"|\" @@ }"`
}

type Concatenation struct {
	Terms []*Term `parser:"@@ { \"+\" @@ }"`
}

type Term struct {
	Optional *Optional `parser:"  @@"`
	Required *Required `parser:"| @@"`
}

type Optional struct {
	Inner *Alternation `parser:"\"[\" @@ \"]\""`
}

type Required struct {
	Subunit *string      `parser:"( @Subunit"`
	Group   *Alternation `parser:"| \"(\" @@ \")\" )"`
	Count   *string      `parser:"[ \"{\" @Subunit \"}\" ]"`
}
