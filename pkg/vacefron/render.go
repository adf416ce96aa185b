package vacefron

import (
	"context"
	"fmt"
	"strconv"
)

// ParamType tells callers how a string argument is interpreted by Render.
type ParamType int

const (
	ParamString ParamType = iota
	ParamInt
	ParamBool
)

// Param describes one argument accepted by Render.
type Param struct {
	Name     string
	Type     ParamType
	Required bool
	Usage    string
}

// Endpoint describes one image endpoint.
type Endpoint struct {
	Name    string
	Summary string
	Params  []Param
	// Text is set for endpoints whose "text" argument is free text that
	// gets escaped.
	Text bool
}

// Args are the string arguments passed to Render, keyed by Param.Name.
type Args map[string]string

var endpoints = []Endpoint{
	{Name: "carreverse", Summary: "Car reverse meme with a caption", Text: true, Params: []Param{
		{Name: "text", Required: true, Usage: "caption text"},
	}},
	{Name: "changemymind", Summary: "Change my mind sign", Text: true, Params: []Param{
		{Name: "text", Required: true, Usage: "text on the sign"},
	}},
	{Name: "firsttime", Summary: "First time? meme", Params: []Param{
		{Name: "user", Required: true, Usage: "avatar URL"},
	}},
	{Name: "grave", Summary: "Grave meme", Params: []Param{
		{Name: "user", Required: true, Usage: "avatar URL"},
	}},
	{Name: "iamspeed", Summary: "I am speed meme", Params: []Param{
		{Name: "user", Required: true, Usage: "avatar URL"},
	}},
	{Name: "icanmilkyou", Summary: "I can milk you meme", Params: []Param{
		{Name: "user", Required: true, Usage: "first avatar URL"},
		{Name: "user2", Usage: "second avatar URL"},
	}},
	{Name: "heaven", Summary: "Heaven meme", Params: []Param{
		{Name: "user", Required: true, Usage: "avatar URL"},
	}},
	{Name: "npc", Summary: "NPC meme", Params: []Param{
		{Name: "text", Required: true, Usage: "first line"},
		{Name: "text2", Required: true, Usage: "second line"},
	}},
	{Name: "stonks", Summary: "Stonks meme", Params: []Param{
		{Name: "user", Required: true, Usage: "avatar URL"},
	}},
	{Name: "tableflip", Summary: "Table flip meme", Params: []Param{
		{Name: "user", Required: true, Usage: "avatar URL"},
	}},
	{Name: "water", Summary: "Water meme with a caption", Text: true, Params: []Param{
		{Name: "text", Required: true, Usage: "caption text"},
	}},
	{Name: "wide", Summary: "Stretch an image", Params: []Param{
		{Name: "image", Required: true, Usage: "image URL"},
	}},
	{Name: "rankcard", Summary: "Discord style rank card", Params: []Param{
		{Name: "username", Required: true, Usage: "user name"},
		{Name: "avatar", Required: true, Usage: "avatar URL"},
		{Name: "level", Type: ParamInt, Required: true, Usage: "current level"},
		{Name: "rank", Type: ParamInt, Required: true, Usage: "rank on the leaderboard"},
		{Name: "current-xp", Type: ParamInt, Required: true, Usage: "current XP"},
		{Name: "next-level-xp", Type: ParamInt, Required: true, Usage: "XP needed for the next level"},
		{Name: "previous-level-xp", Type: ParamInt, Required: true, Usage: "XP of the previous level"},
		{Name: "custom-background", Usage: "background image URL"},
		{Name: "xp-color", Usage: "XP bar color as 3 or 6 digit hex"},
		{Name: "boosting", Type: ParamBool, Usage: "show the server booster badge"},
	}},
}

// Endpoints lists the image endpoints Render understands.
func Endpoints() []Endpoint {
	out := make([]Endpoint, len(endpoints))
	copy(out, endpoints)
	return out
}

// LookupEndpoint returns the endpoint called name.
func LookupEndpoint(name string) (Endpoint, bool) {
	for _, e := range endpoints {
		if e.Name == name {
			return e, true
		}
	}
	return Endpoint{}, false
}

// Render calls the endpoint called name with string arguments. Missing
// required arguments and unparsable numbers fail with a *ValidationError
// before any request is made.
func (c *Client) Render(ctx context.Context, name string, args Args) (Image, error) {
	e, ok := LookupEndpoint(name)
	if !ok {
		return Image{}, fmt.Errorf("unknown endpoint: %s", name)
	}
	for _, p := range e.Params {
		if p.Required && args[p.Name] == "" {
			return Image{}, &ValidationError{Field: p.Name, Message: "required"}
		}
	}

	switch e.Name {
	case "carreverse":
		return c.CarReverse(ctx, args["text"])
	case "changemymind":
		return c.ChangeMyMind(ctx, args["text"])
	case "firsttime":
		return c.FirstTime(ctx, args["user"])
	case "grave":
		return c.Grave(ctx, args["user"])
	case "iamspeed":
		return c.IAmSpeed(ctx, args["user"])
	case "icanmilkyou":
		return c.ICanMilkYou(ctx, ICanMilkYouParams{User: args["user"], User2: args["user2"]})
	case "heaven":
		return c.Heaven(ctx, args["user"])
	case "npc":
		return c.NPC(ctx, NPCParams{Text: args["text"], Text2: args["text2"]})
	case "stonks":
		return c.Stonks(ctx, args["user"])
	case "tableflip":
		return c.TableFlip(ctx, args["user"])
	case "water":
		return c.Water(ctx, args["text"])
	case "wide":
		return c.Wide(ctx, args["image"])
	case "rankcard":
		p, err := rankCardFromArgs(args)
		if err != nil {
			return Image{}, err
		}
		return c.RankCard(ctx, p)
	}
	return Image{}, fmt.Errorf("unknown endpoint: %s", name)
}

func rankCardFromArgs(args Args) (RankCardParams, error) {
	p := RankCardParams{
		Username:         args["username"],
		Avatar:           args["avatar"],
		CustomBackground: args["custom-background"],
		XPColor:          args["xp-color"],
	}

	ints := []struct {
		name string
		dst  *int
	}{
		{"level", &p.Level},
		{"rank", &p.Rank},
		{"current-xp", &p.CurrentXP},
		{"next-level-xp", &p.NextLevelXP},
		{"previous-level-xp", &p.PreviousLevelXP},
	}
	for _, f := range ints {
		n, err := strconv.Atoi(args[f.name])
		if err != nil {
			return p, &ValidationError{Field: f.name, Value: args[f.name], Message: "must be an integer"}
		}
		*f.dst = n
	}

	if v := args["boosting"]; v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return p, &ValidationError{Field: "boosting", Value: v, Message: "must be true or false"}
		}
		p.IsBoosting = b
	}
	return p, nil
}
