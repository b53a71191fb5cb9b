// Package connector stores uploaded recordings on the local filesystem or in Azure Blob Storage.
package connector
