package discord

//go:generate mockgen -package=mocks -destination=mocks/mock_messenger.go github.com/KirkDiggler/mafiabot/internal/handlers/discord Messenger

import (
	"context"
	"errors"
	"fmt"

	"github.com/KirkDiggler/mafiabot/internal/services/messaging"
	"github.com/bwmarrin/discordgo"
)

// Messenger is the part of the Discord REST API the bot sends through.
// *discordgo.Session satisfies it.
type Messenger interface {
	ChannelMessageSendComplex(channelID string, data *discordgo.MessageSend, options ...discordgo.RequestOption) (*discordgo.Message, error)
	ChannelMessageEditComplex(edit *discordgo.MessageEdit, options ...discordgo.RequestOption) (*discordgo.Message, error)
	ChannelMessageDelete(channelID, messageID string, options ...discordgo.RequestOption) error
	UserChannelCreate(recipientID string, options ...discordgo.RequestOption) (*discordgo.Channel, error)
}

// Notifier delivers engine messages to Discord channels and DMs
type Notifier struct {
	api Messenger
}

var _ messaging.Notifier = (*Notifier)(nil)

// NewNotifier creates a notifier sending through the given API
func NewNotifier(api Messenger) (*Notifier, error) {
	if api == nil {
		return nil, errors.New("messenger cannot be nil")
	}

	return &Notifier{api: api}, nil
}

// Broadcast posts a message to the game's channel
func (n *Notifier) Broadcast(ctx context.Context, scopeKey string, msg *messaging.Message) (*messaging.MessageRef, error) {
	sent, err := n.api.ChannelMessageSendComplex(scopeKey, &discordgo.MessageSend{
		Embeds:     renderEmbeds(msg),
		Components: renderComponents(msg),
	}, discordgo.WithContext(ctx))
	if err != nil {
		return nil, deliveryError(scopeKey, err)
	}

	return &messaging.MessageRef{ChannelID: sent.ChannelID, MessageID: sent.ID}, nil
}

// DirectMessage opens (or reuses) a DM channel with the user and posts there
func (n *Notifier) DirectMessage(ctx context.Context, humanID string, msg *messaging.Message) error {
	channel, err := n.api.UserChannelCreate(humanID, discordgo.WithContext(ctx))
	if err != nil {
		return deliveryError(humanID, err)
	}

	_, err = n.api.ChannelMessageSendComplex(channel.ID, &discordgo.MessageSend{
		Embeds:     renderEmbeds(msg),
		Components: renderComponents(msg),
	}, discordgo.WithContext(ctx))
	if err != nil {
		return deliveryError(humanID, err)
	}

	return nil
}

// EditMessage replaces a previously sent message in place
func (n *Notifier) EditMessage(ctx context.Context, ref *messaging.MessageRef, msg *messaging.Message) error {
	if ref == nil {
		return errors.New("message ref cannot be nil")
	}

	embeds := renderEmbeds(msg)
	components := renderComponents(msg)

	_, err := n.api.ChannelMessageEditComplex(&discordgo.MessageEdit{
		Channel:    ref.ChannelID,
		ID:         ref.MessageID,
		Embeds:     &embeds,
		Components: &components,
	}, discordgo.WithContext(ctx))
	if err != nil {
		return deliveryError(ref.ChannelID, err)
	}

	return nil
}

// deliveryError marks Discord API rejections (closed DMs, missing access,
// deleted messages) as undeliverable; anything else is a transport failure.
func deliveryError(recipient string, err error) error {
	var restErr *discordgo.RESTError
	if errors.As(err, &restErr) {
		return &messaging.DeliveryError{Recipient: recipient, Err: err}
	}
	return fmt.Errorf("failed to reach discord: %w", err)
}
