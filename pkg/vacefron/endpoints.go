package vacefron

import (
	"context"
	"strings"
)

// query keeps parameters in the order they are added. Values are written
// as given; callers escape free text with Escape first.
type query []string

func (q *query) add(key, value string) {
	*q = append(*q, key+"="+value)
}

func (q query) encode() string {
	return strings.Join(q, "&")
}

func (c *Client) endpointURL(path string, q query) string {
	return c.baseURL + "/" + path + "?" + q.encode()
}

func (c *Client) image(ctx context.Context, path string, q query) (Image, error) {
	return c.fetch(ctx, c.endpointURL(path, q))
}

// CarReverse renders text on the car reverse meme.
func (c *Client) CarReverse(ctx context.Context, text string) (Image, error) {
	var q query
	q.add("text", Escape(text))
	return c.image(ctx, "carreverse", q)
}

// ChangeMyMind renders text on the change my mind sign.
func (c *Client) ChangeMyMind(ctx context.Context, text string) (Image, error) {
	var q query
	q.add("text", Escape(text))
	return c.image(ctx, "changemymind", q)
}

// FirstTime takes an avatar URL.
func (c *Client) FirstTime(ctx context.Context, user string) (Image, error) {
	var q query
	q.add("user", user)
	return c.image(ctx, "firsttime", q)
}

// Grave puts an avatar URL on a gravestone.
func (c *Client) Grave(ctx context.Context, user string) (Image, error) {
	var q query
	q.add("user", user)
	return c.image(ctx, "grave", q)
}

// IAmSpeed takes an avatar URL.
func (c *Client) IAmSpeed(ctx context.Context, user string) (Image, error) {
	var q query
	q.add("user", user)
	return c.image(ctx, "iamspeed", q)
}

// ICanMilkYouParams are the parameters of ICanMilkYou. User2 is optional.
type ICanMilkYouParams struct {
	User  string
	User2 string
}

// ICanMilkYou requests the final URL, user2 included, in a single call.
func (c *Client) ICanMilkYou(ctx context.Context, p ICanMilkYouParams) (Image, error) {
	var q query
	q.add("user1", p.User)
	if p.User2 != "" {
		q.add("user2", p.User2)
	}
	return c.image(ctx, "icanmilkyou", q)
}

// Heaven takes an avatar URL.
func (c *Client) Heaven(ctx context.Context, user string) (Image, error) {
	var q query
	q.add("user", user)
	return c.image(ctx, "heaven", q)
}

// NPCParams are the two lines of the NPC meme. They skip the Escape table.
type NPCParams struct {
	Text  string
	Text2 string
}

// NPC renders two lines of text on the NPC meme.
func (c *Client) NPC(ctx context.Context, p NPCParams) (Image, error) {
	var q query
	q.add("text1", p.Text)
	q.add("text2", p.Text2)
	return c.image(ctx, "npc", q)
}

// Stonks takes an avatar URL.
func (c *Client) Stonks(ctx context.Context, user string) (Image, error) {
	var q query
	q.add("user", user)
	return c.image(ctx, "stonks", q)
}

// TableFlip takes an avatar URL.
func (c *Client) TableFlip(ctx context.Context, user string) (Image, error) {
	var q query
	q.add("user", user)
	return c.image(ctx, "tableflip", q)
}

// Water renders text on the water meme.
func (c *Client) Water(ctx context.Context, text string) (Image, error) {
	var q query
	q.add("text", Escape(text))
	return c.image(ctx, "water", q)
}

// Wide stretches the image at imageURL.
func (c *Client) Wide(ctx context.Context, imageURL string) (Image, error) {
	var q query
	q.add("image", imageURL)
	return c.image(ctx, "wide", q)
}
