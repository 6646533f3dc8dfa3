package service

import (
	"fmt"
	"html/template"

	"rezervace/internal/entities"
)

func customerMessage(b *entities.Booking) Message {
	name := template.HTMLEscapeString(b.Name)
	slot := template.HTMLEscapeString(b.Slot)

	return Message{
		To:      b.Email,
		ToName:  b.Name,
		Subject: fmt.Sprintf("Potvrzení rezervace %s", b.Slot),
		Text: fmt.Sprintf("Děkujeme, %s. Vaše rezervace na %s pro %d osob byla přijata.",
			b.Name, b.Slot, b.People),
		HTML: fmt.Sprintf("<p>Děkujeme, <strong>%s</strong>.</p><p>Vaše rezervace na <strong>%s</strong> pro <strong>%d</strong> osob byla přijata.</p>",
			name, slot, b.People),
	}
}

func ownerMessage(b *entities.Booking, ownerEmail string) Message {
	return Message{
		To:      ownerEmail,
		Subject: fmt.Sprintf("Nová rezervace: %s — %s", b.Slot, b.Name),
		Text: fmt.Sprintf("Nová rezervace: %s | %s | %s | %d osob",
			b.Slot, b.Name, b.Email, b.People),
	}
}

func ownerAlertSMS(b *entities.Booking) string {
	return fmt.Sprintf("Nová rezervace: %s | %s | %d osob", b.Slot, b.Name, b.People)
}
