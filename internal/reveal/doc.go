// Package reveal implements the map reveal traversal engine.
//
// The engine walks the host's area → subarea → room graph and invokes the
// host's reveal routine on every room of a subarea plus the rooms one hop
// across the subarea boundary. A room must be registered with its area before
// it can be revealed; when the engine performs that registration itself it
// undoes it immediately afterwards, so the only lasting effect of a traversal
// is the reveal.
//
// Any null link met during a walk abandons that branch only. The host mutates
// the graph independently and no locks are taken on it, so a broken link is an
// expected, transient state rather than an error.
package reveal
