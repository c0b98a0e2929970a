package main

// @title Backoffice API
// @version 1.0
// @description Multi-tenant business backoffice: fleet, partners, inventory, billing, notifications and reporting
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.email support@example.com

// @license.name MIT

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the session token.

// @tag.name Users
// @tag.description Self-provisioning, profile and role management

// @tag.name Cars
// @tag.description Fleet records

// @tag.name Companies
// @tag.description Tenant companies

// @tag.name Sellers
// @tag.description Suppliers of purchased goods

// @tag.name Customers
// @tag.description Buyers invoiced by a company

// @tag.name Crates
// @tag.description Returnable crate stock

// @tag.name Inventory
// @tag.description Product purchases and sellings

// @tag.name Invoices
// @tag.description Sales invoices and payment reminders

// @tag.name Payments
// @tag.description Payments recorded against invoices

// @tag.name Purchase Invoices
// @tag.description Invoices received from sellers

// @tag.name Notifications
// @tag.description In-app notifications

// @tag.name Dashboard
// @tag.description Revenue statistics and sales trend

// @tag.name Health
// @tag.description Health check endpoints
