package ordering

import (
	"github.com/playbase/backend/internal/domain/shared"
	"github.com/playbase/backend/internal/domain/timeline"
)

// statusTimelineInfo holds the bilingual customer-facing text and icon shown
// on the order timeline for each status.
type statusTimelineInfo struct {
	title         string
	titleSq       string
	description   string
	descriptionSq string
	icon          string
}

var orderTimelineLabels = map[Status]statusTimelineInfo{
	StatusPending: {
		title:         "Order Created",
		titleSq:       "Porosia u krijua",
		description:   "Your order has been received and is awaiting confirmation.",
		descriptionSq: "Porosia juaj është pranuar dhe pret konfirmimin.",
		icon:          "clipboard",
	},
	StatusConfirmed: {
		title:         "Order Confirmed",
		titleSq:       "Porosia u konfirmua",
		description:   "Your order has been confirmed and will be prepared shortly.",
		descriptionSq: "Porosia juaj është konfirmuar dhe do të përgatitet së shpejti.",
		icon:          "check-circle",
	},
	StatusProcessing: {
		title:         "In Progress",
		titleSq:       "Në përpunim",
		description:   "We are assembling and preparing your order.",
		descriptionSq: "Po montojmë dhe përgatisim porosinë tuaj.",
		icon:          "cog",
	},
	StatusShipped: {
		title:         "Shipped",
		titleSq:       "U dërgua",
		description:   "Your order has been handed to the courier.",
		descriptionSq: "Porosia juaj i është dorëzuar korrierit.",
		icon:          "truck",
	},
	StatusDelivered: {
		title:         "Delivered",
		titleSq:       "U dorëzua",
		description:   "Your order has been delivered. Enjoy!",
		descriptionSq: "Porosia juaj është dorëzuar. Punë të mbarë!",
		icon:          "package",
	},
	StatusCancelled: {
		title:         "Order Cancelled",
		titleSq:       "Porosia u anulua",
		description:   "Your order has been cancelled.",
		descriptionSq: "Porosia juaj është anuluar.",
		icon:          "x-circle",
	},
}

// TimelineEntryFor builds the timeline entry recorded when the order reaches
// the given status. The entry mirrors the status at the time of creation.
func TimelineEntryFor(o *Order, status Status) (*timeline.Entry, error) {
	info, ok := orderTimelineLabels[status]
	if !ok {
		return nil, shared.NewDomainError("INVALID_STATUS", "No timeline labels for status "+status.String())
	}
	return timeline.NewEntry(
		timeline.OwnerOrder,
		o.ID,
		info.title,
		info.titleSq,
		info.description,
		info.descriptionSq,
		status.String(),
		info.icon,
	)
}
