package scoredb

import (
	"fmt"
	"time"

	sharedtypes "github.com/Black-And-White-Club/miniclub/app/types/shared"
	"github.com/uptrace/bun"
)

// Scorecard is one row of the scores table.
type Scorecard struct {
	bun.BaseModel `bun:"table:scores,alias:s"`
	ID            int64     `bun:"id,pk,autoincrement"`
	Fecha         time.Time `bun:"fecha,notnull"`
	Email         string    `bun:"email,notnull"`
	NombreMostrar string    `bun:"nombre_mostrar,notnull"`
	Hoyo1         int       `bun:"hoyo_1,notnull"`
	Hoyo2         int       `bun:"hoyo_2,notnull"`
	Hoyo3         int       `bun:"hoyo_3,notnull"`
	Hoyo4         int       `bun:"hoyo_4,notnull"`
	Hoyo5         int       `bun:"hoyo_5,notnull"`
	Hoyo6         int       `bun:"hoyo_6,notnull"`
	Hoyo7         int       `bun:"hoyo_7,notnull"`
	Hoyo8         int       `bun:"hoyo_8,notnull"`
	Hoyo9         int       `bun:"hoyo_9,notnull"`
	Hoyo10        int       `bun:"hoyo_10,notnull"`
	Hoyo11        int       `bun:"hoyo_11,notnull"`
	Hoyo12        int       `bun:"hoyo_12,notnull"`
	Hoyo13        int       `bun:"hoyo_13,notnull"`
	Hoyo14        int       `bun:"hoyo_14,notnull"`
	Total         int       `bun:"total,notnull"`
}

// CSVHeader is the column order of the ledger file.
var CSVHeader = func() []string {
	h := []string{"fecha", "email", "nombre_mostrar"}
	for i := 1; i <= sharedtypes.HoleCount; i++ {
		h = append(h, fmt.Sprintf("hoyo_%d", i))
	}
	return append(h, "total")
}()

func (s *Scorecard) holes() []*int {
	return []*int{
		&s.Hoyo1, &s.Hoyo2, &s.Hoyo3, &s.Hoyo4, &s.Hoyo5, &s.Hoyo6, &s.Hoyo7,
		&s.Hoyo8, &s.Hoyo9, &s.Hoyo10, &s.Hoyo11, &s.Hoyo12, &s.Hoyo13, &s.Hoyo14,
	}
}

// FromDomain builds a row from a validated card. Strokes beyond the hole count are ignored.
func FromDomain(card sharedtypes.Scorecard) *Scorecard {
	row := &Scorecard{
		Fecha:         card.Timestamp,
		Email:         card.Email,
		NombreMostrar: card.DisplayName,
		Total:         card.Total,
	}
	for i, h := range row.holes() {
		if i < len(card.Strokes) {
			*h = card.Strokes[i]
		}
	}
	return row
}

// ToDomain converts the row into the shared domain type.
func (s *Scorecard) ToDomain() sharedtypes.Scorecard {
	holes := s.holes()
	strokes := make([]int, len(holes))
	for i, h := range holes {
		strokes[i] = *h
	}
	return sharedtypes.Scorecard{
		Timestamp:   s.Fecha,
		Email:       s.Email,
		DisplayName: s.NombreMostrar,
		Strokes:     strokes,
		Total:       s.Total,
	}
}
