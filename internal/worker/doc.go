// Package worker implements the drafter worker lifecycle and Redis Streams integration.
//
// The worker reads render requests from a Redis stream, renders the requested
// legal document, optionally exports it, and publishes the text to a result
// stream. Failed requests are published to "<result stream>.errors" with one
// of the codes invalid_input, unknown_kind, export_unavailable or internal.
//
// A work message carries a single "data" field holding JSON:
//
//	{
//	  "request_id": "b5c1...",
//	  "kind": "vakalatnama",
//	  "fields": {"court": "District Court, Indore", ...},
//	  "export": {"destination": "vakalatnama-1234.docx"}
//	}
//
// Example usage:
//
//	cfg, _ := config.Load()
//	redisClient := redis.NewClient(&redis.Options{...})
//	renderer := documents.NewRenderer(documents.WithWidth(cfg.PageWidth))
//	processor := worker.NewProcessor(renderer, exporter, cfg.ExportDir, logger)
//
//	w := worker.NewWorker(cfg, redisClient, processor, logger)
//	if err := w.Start(); err != nil {
//	    log.Fatal(err)
//	}
//	defer w.Stop(ctx)
//
// Health checks are provided via a separate HTTP server:
//
//	healthServer := worker.NewHealthServer(8083, redisClient, renderer, logger)
//	healthServer.Start()
//	defer healthServer.Stop()
package worker
