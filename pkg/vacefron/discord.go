package vacefron

import (
	"context"
	"encoding/json"
)

// CreatorInvite is the invite to the API creator's Discord server.
const CreatorInvite = "https://discord.gg/yCzcfju"

// DiscordServerInfo is returned by DiscordServerWithCreator.
type DiscordServerInfo struct {
	Server        string
	CreatorInvite string
}

type rootResponse struct {
	DiscordServer string `json:"discord_server"`
}

// DiscordServer returns the support server advertised at the API root.
func (c *Client) DiscordServer(ctx context.Context) (string, error) {
	resp, err := c.session.get(ctx, c.baseURL)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var root rootResponse
	if err := json.NewDecoder(resp.Body).Decode(&root); err != nil {
		return "", &DecodeError{URL: c.baseURL, StatusCode: resp.StatusCode, Err: err}
	}
	c.logger.Debug("Fetched API root", "status", resp.StatusCode, "discord_server", root.DiscordServer)
	return root.DiscordServer, nil
}

// DiscordServerWithCreator returns the support server together with
// CreatorInvite.
func (c *Client) DiscordServerWithCreator(ctx context.Context) (DiscordServerInfo, error) {
	server, err := c.DiscordServer(ctx)
	if err != nil {
		return DiscordServerInfo{}, err
	}
	return DiscordServerInfo{Server: server, CreatorInvite: CreatorInvite}, nil
}
