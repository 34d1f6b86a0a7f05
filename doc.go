// Package apclust clusters large sparse graphs with affinity propagation.
//
// 🚀 What is apclust?
//
//	A message-passing clusterer for directed link lists such as social or
//	location-based networks. Every node proposes candidate exemplars among
//	the nodes it links to (plus itself); responsibility and availability
//	messages are exchanged until the exemplar assignment stops changing.
//
// ✨ Why apclust?
//
//   - Sparse by construction – memory is O(n + links), never O(n²)
//   - Deterministic – identical results for any worker count
//   - Cancellable – every run takes a context.Context
//   - Observable – zap progress logs, Prometheus run metrics
//
// Everything is organized under these packages:
//
//	affinity/      — candidate graph, message engine, convergence monitor, Cluster
//	builder/       — deterministic synthetic link lists (paths, stars, cliques, random)
//	edgelist/      — link-list reader, assignment writer, gonum adapter
//	config/        — YAML + APCLUST_* environment configuration with validation
//	observability/ — zap logger construction and Prometheus metrics
//	cmd/apclust/   — command-line tool
//
// Quick start:
//
//	links, _ := edgelist.ReadFile("loc-gowalla_edges.txt", 196591)
//	g, _ := affinity.NewGraph(196591, links)
//	res, _ := affinity.Cluster(ctx, g, affinity.WithWorkers(runtime.NumCPU()))
//	fmt.Println("Number of clusters:", res.ClusterCount)
package apclust
