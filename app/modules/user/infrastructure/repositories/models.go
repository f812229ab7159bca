package userdb

import (
	"time"

	sharedtypes "github.com/Black-And-White-Club/miniclub/app/types/shared"
	"github.com/uptrace/bun"
)

// Player is one row of the identity table, keyed by normalized email.
type Player struct {
	bun.BaseModel `bun:"table:usuarios,alias:u"`
	Email         string    `bun:"email,pk" json:"email"`
	Name          string    `bun:"nombre,notnull,default:''" json:"name"`
	Nickname      string    `bun:"nickname,notnull,default:''" json:"nickname"`
	RegisteredAt  time.Time `bun:"fecha_registro,notnull" json:"registered_at"`
}

// CSVHeader is the column order of the identity file.
var CSVHeader = []string{"email", "nombre", "nickname", "fecha_registro"}

// ToProfile converts the row into the shared domain type.
func (p *Player) ToProfile() *sharedtypes.PlayerProfile {
	if p == nil {
		return nil
	}
	return &sharedtypes.PlayerProfile{
		Email:        p.Email,
		Name:         p.Name,
		Nickname:     p.Nickname,
		RegisteredAt: p.RegisteredAt,
	}
}
