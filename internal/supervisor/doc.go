// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

/*
Package supervisor runs the place map server's long-lived services under a
suture v4 supervisor tree.

# Layout

	placemap
	├── session-layer
	│   └── SessionSweeperService
	├── realtime-layer
	│   └── websocket.Hub
	└── api-layer
	    └── HTTPServerService

Each layer restarts its services independently with suture's failure
threshold, decay and backoff. A crashing hub does not take the REST API
down with it.

# Usage

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
	    return err
	}
	tree.AddSessionService(services.NewSessionSweeperService(store, cfg.Session.SweepInterval))
	tree.AddRealtimeService(hub)
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	err = tree.Serve(ctx)

Supervisor events (service failures, backoff, restarts) are logged through
sutureslog. Passing logging.NewSlogLogger routes them into the global
zerolog logger so they share the JSON output of the rest of the server.

# Shutdown

Canceling the context stops the layers. Services that outlive
TreeConfig.ShutdownTimeout are listed by UnstoppedServiceReport.
*/
package supervisor
