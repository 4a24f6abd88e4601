package logger

import (
	"emipcpo/internal"
	"fmt"
	"log"
	"time"
)

type Importance string

const (
	Info    Importance = " "
	Warning Importance = "?"
	Error   Importance = "!"
)

// Logger fans every log event out to the console, the attached message
// service and the attached database. Events go through a single writer
// goroutine so sinks never block a caller.
type Logger struct {
	messageService internal.MessageService
	database       internal.Database
	debugMode      bool
	writer         chan *LogEvent
}

type LogEvent struct {
	Importance Importance
	Message    *internal.CallLogMessage
}

func NewLogger() *Logger {
	logger := &Logger{
		writer: make(chan *LogEvent, 100),
	}
	go logger.startWriter()
	return logger
}

func (l *Logger) startWriter() {
	for {
		event := <-l.writer

		message := event.Message
		messageText := fmt.Sprintf("[%s] %s: %s", message.EntityId, message.Operation, message.Text)
		l.logLine(event.Importance, messageText)

		if l.messageService != nil {
			if err := l.messageService.Send(message); err != nil {
				l.logLine(Error, fmt.Sprintln("error sending message:", err))
			}
		}

		if l.database != nil {
			if err := l.database.WriteLogMessage(message); err != nil {
				l.logLine(Error, fmt.Sprintln("write log to database failed:", err))
			}
		}
	}
}

func (l *Logger) SetDebugMode(debugMode bool) {
	l.debugMode = debugMode
}

func (l *Logger) SetMessageService(messageService internal.MessageService) {
	l.messageService = messageService
}

func (l *Logger) SetDatabase(database internal.Database) {
	l.database = database
}

func logTime(t time.Time) string {
	timeString := fmt.Sprintf("%d-%02d-%02d %02d:%02d:%02d", t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second())
	return timeString
}

func (l *Logger) FeatureEvent(feature, id, text string) {
	l.logEvent(Info, l.newCallLogMessage(feature, id, text))
}

func (l *Logger) Debug(text string) {
	if !l.debugMode {
		return
	}
	l.logEvent(Info, l.newCallLogMessage("info", "", text))
}

func (l *Logger) Warn(text string) {
	l.logEvent(Warning, l.newCallLogMessage("warning", "", text))
}

func (l *Logger) Error(text string, err error) {
	l.logEvent(Error, l.newCallLogMessage("error", "", fmt.Sprintf("%s: %s", text, err)))
}

func (l *Logger) logEvent(importance Importance, message *internal.CallLogMessage) {
	if message.EntityId == "" {
		message.EntityId = "*"
	}
	message.Importance = string(importance)
	event := &LogEvent{
		Importance: importance,
		Message:    message,
	}
	l.writer <- event
}

func (l *Logger) logLine(importance Importance, text string) {
	log.Printf("%s %s", importance, text)
}

func (l *Logger) newCallLogMessage(operation, id, text string) *internal.CallLogMessage {
	return &internal.CallLogMessage{
		Time:      logTime(time.Now()),
		TimeStamp: time.Now().UTC(),
		Text:      text,
		Operation: operation,
		EntityId:  id,
	}
}
