package controllers

import (
	"github.com/gaolamthuy/admin-sub000/service"
)

// Shared service handles, wired once from main. Controllers stay thin gin
// handlers over these.
var (
	Catalog *service.CatalogService
	Drafts  *service.DraftStore
	Webhook *service.WebhookClient
)

func Init(catalog *service.CatalogService, drafts *service.DraftStore, webhook *service.WebhookClient) {
	Catalog = catalog
	Drafts = drafts
	Webhook = webhook
}
