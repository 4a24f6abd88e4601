package telegram

import (
	"fmt"
	"log"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api"
)

// TgBot sends operational alerts to a fixed chat.
type TgBot struct {
	api    *tgbotapi.BotAPI
	chatId int64
	send   chan MessageContent
}

type MessageContent struct {
	ChatID int64
	Text   string
}

func NewBot(apiKey string, chatId int64) (*TgBot, error) {
	tgBot := &TgBot{
		chatId: chatId,
		send:   make(chan MessageContent, 100),
	}
	api, err := tgbotapi.NewBotAPI(apiKey)
	if err != nil {
		return nil, err
	}
	tgBot.api = api
	return tgBot, nil
}

func (b *TgBot) Start() {
	go b.sendPump()
}

// Alert queues one message for the configured chat. Queue overflow drops
// the message rather than blocking the caller.
func (b *TgBot) Alert(text string) {
	select {
	case b.send <- MessageContent{ChatID: b.chatId, Text: sanitize(text)}:
	default:
		log.Println("bot: send queue full, alert dropped")
	}
}

// sendPump sending messages to users
func (b *TgBot) sendPump() {
	for {
		if event, ok := <-b.send; ok {
			b.sendMessage(event.ChatID, event.Text)
		}
	}
}

// sendMessage common routine to send a message via bot API
func (b *TgBot) sendMessage(id int64, text string) {
	msg := tgbotapi.NewMessage(id, text)
	msg.ParseMode = "MarkdownV2"
	_, err := b.api.Send(msg)
	if err != nil {
		// maybe error was while parsing, so we can send a message about this error
		msg = tgbotapi.NewMessage(id, fmt.Sprintf("Error: %v", err))
		_, err = b.api.Send(msg)
		if err != nil {
			log.Printf("bot: error sending message: %v", err)
		}
	}
}

func sanitize(input string) string {
	reservedChars := "\\`*_{}[]()#+-.!|"
	sanitized := ""
	for _, char := range input {
		if strings.ContainsRune(reservedChars, char) {
			sanitized += "\\" + string(char)
		} else {
			sanitized += string(char)
		}
	}
	return sanitized
}
