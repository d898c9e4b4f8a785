// Package dataengg is the operator CLI for the dataengg GCP data platform.
//
// The platform stages e-commerce order data in Cloud Storage and loads it
// into BigQuery; every script on the platform writes structured entries to
// Cloud Logging through a shared service account.
//
// # Overview
//
// The dataengg CLI provides:
//   - IAM bootstrap: grant the platform service account its logging role
//   - Permission verification against the live project policy
//   - BigQuery staging dataset lifecycle (create/delete)
//   - Master-data loads from Cloud Storage into BigQuery
//   - A table-schema file format (YAML/JSON) with validation
//
// # Installation
//
//	go install github.com/0chandansharma/dataengg/cmd/dataengg@latest
//
// # Quick Start
//
//	dataengg grant --account you@example.com --project my-project
//	dataengg verify --project my-project
//	dataengg dataset create
//	dataengg load --bucket staging-ecomm-data --object data/master_data.csv
//
// # Configuration
//
// Settings resolve from flags, then DATAENGG_* environment variables, then
// config.yaml in $HOME/.dataengg or the working directory. Run
// 'dataengg config get' to see the resolved values and their sources.
package dataengg
