package vacefron

import (
	"context"
	"regexp"
	"strconv"
)

var hexColor = regexp.MustCompile(`^(?:[0-9a-fA-F]{3}){1,2}$`)

const invalidHexMessage = "Invalid HEX value. You're only allowed to enter HEX (0-9 & A-F)"

// RankCardParams describes a rank card. CustomBackground and XPColor are
// left out of the request when empty.
type RankCardParams struct {
	Username        string
	Avatar          string
	Level           int
	Rank            int
	CurrentXP       int
	NextLevelXP     int
	PreviousLevelXP int

	CustomBackground string
	// XPColor is a 3 or 6 digit hex color without the leading "#".
	XPColor    string
	IsBoosting bool
}

// Validate checks the parameters that can be rejected without asking the
// API.
func (p RankCardParams) Validate() error {
	if p.XPColor != "" && !hexColor.MatchString(p.XPColor) {
		return &ValidationError{Field: "xpcolor", Value: p.XPColor, Message: invalidHexMessage}
	}
	return nil
}

func (p RankCardParams) query() query {
	var q query
	q.add("username", Escape(p.Username))
	q.add("avatar", p.Avatar)
	q.add("level", strconv.Itoa(p.Level))
	q.add("rank", strconv.Itoa(p.Rank))
	q.add("currentxp", strconv.Itoa(p.CurrentXP))
	q.add("nextlevelxp", strconv.Itoa(p.NextLevelXP))
	q.add("previouslevelxp", strconv.Itoa(p.PreviousLevelXP))
	if p.CustomBackground != "" {
		q.add("custombg", p.CustomBackground)
	}
	if p.XPColor != "" {
		q.add("xpcolor", p.XPColor)
	}
	if p.IsBoosting {
		q.add("isboosting", "true")
	}
	return q
}

// RankCard renders a rank card. An invalid XPColor fails with a
// *ValidationError before any request is made.
func (c *Client) RankCard(ctx context.Context, p RankCardParams) (Image, error) {
	if err := p.Validate(); err != nil {
		return Image{}, err
	}
	return c.image(ctx, "rankcard", p.query())
}
