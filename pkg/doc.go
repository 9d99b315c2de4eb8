// Package pkg provides the core libraries for netlint network analysis.
//
// # Overview
//
// Netlint inspects multimodal transport networks stored in JSON documents
// and reports structural and topological problems before they break a
// simulation run. The pkg directory is organized by concern:
//
//  1. [network] - Document model (nodes, sections, stops, zones, layers),
//     JSON import/export, node-link export, and descriptive statistics
//  2. [validate] - Structural checks for network documents and demand files
//  3. [topology] - Graph analysis: dead-end/spring/isolate classification,
//     duplicate section detection, and node centrality
//  4. [report] - Combines validation and topology into a persistent report
//  5. [render] - Graphviz DOT/SVG rendering with finding highlights
//  6. [cache] - Content-addressed caching (file, Redis, in-memory null)
//  7. [server] - HTTP API serving reports
//
// # Architecture
//
// The typical data flow through netlint:
//
//	JSON network document
//	         ↓
//	    [network] package (decode + accessors)
//	         ↓
//	    [validate] + [topology] packages (checks + graph analysis)
//	         ↓
//	    [report] package (aggregate, cache, persist)
//	         ↓
//	    terminal summary / JSON / DOT / SVG output
//
// # Quick Start
//
// Analyze a network file and inspect the findings:
//
//	data, _ := os.ReadFile("network.json")
//	rep, err := report.Build(data)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(rep.Topology.DeadEnds)
//
// Render the network with findings highlighted:
//
//	net, _ := network.ImportFile("network.json")
//	dot := render.ToDOT(net, rep.Topology, render.Options{Detailed: true})
//	svg, _ := render.RenderSVG(dot)
//
// # Supporting Packages
//
// [errors] - Structured errors with stable machine-readable codes, shared
// by the CLI and the HTTP API.
//
// [retry] - Bounded retries with exponential backoff, used when connecting
// to Redis and MongoDB.
//
// [buildinfo] - Version metadata injected at build time.
//
// [network]: https://pkg.go.dev/github.com/transitlab/netlint/pkg/network
// [validate]: https://pkg.go.dev/github.com/transitlab/netlint/pkg/validate
// [topology]: https://pkg.go.dev/github.com/transitlab/netlint/pkg/topology
// [report]: https://pkg.go.dev/github.com/transitlab/netlint/pkg/report
// [render]: https://pkg.go.dev/github.com/transitlab/netlint/pkg/render
// [cache]: https://pkg.go.dev/github.com/transitlab/netlint/pkg/cache
// [server]: https://pkg.go.dev/github.com/transitlab/netlint/pkg/server
// [errors]: https://pkg.go.dev/github.com/transitlab/netlint/pkg/errors
// [retry]: https://pkg.go.dev/github.com/transitlab/netlint/pkg/retry
// [buildinfo]: https://pkg.go.dev/github.com/transitlab/netlint/pkg/buildinfo
package pkg
