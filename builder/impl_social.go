// SPDX-License-Identifier: MIT
// Package: socialgraph/builder
//
// impl_social.go - the friends network used by the CLI demo.
//
// The fixture reproduces the tutorial data set: ten friends, their
// one-directional "knows" edges, then two late arrivals (Ciara, Kyle).
// The late re-registration of Hannah goes through EnsureVertex, so her
// earlier edges survive.

package builder

import (
	"fmt"

	"github.com/katalvlaran/socialgraph/core"
)

const methodSocial = "Social"

// socialPeople lists the initial members in registration order.
var socialPeople = []string{
	"Karen", "Jordan", "Hannah", "Zakye", "William",
	"Salvador", "Dacio", "Erika", "Deontae", "Xavier",
}

// socialLinks are the initial "knows" edges. Repeated pairs are kept as
// recorded; the graph ignores them.
var socialLinks = [][2]string{
	{"William", "Salvador"}, {"William", "Karen"}, {"William", "Erika"},
	{"William", "Hannah"}, {"William", "Jordan"}, {"William", "Hannah"},
	{"William", "Dacio"}, {"William", "Salvador"}, {"William", "Xavier"},

	{"Jordan", "Hannah"}, {"Jordan", "Karen"}, {"Jordan", "Zakye"},
	{"Jordan", "Deontae"}, {"Jordan", "Xavier"},

	{"Hannah", "Erika"}, {"Hannah", "Jordan"}, {"Hannah", "Karen"},
	{"Hannah", "Zakye"}, {"Hannah", "Deontae"}, {"Hannah", "Xavier"},

	{"Erika", "Hannah"}, {"Erika", "Jordan"}, {"Erika", "Karen"},
	{"Erika", "Zakye"}, {"Erika", "Deontae"}, {"Erika", "Xavier"},

	{"Dacio", "Salvador"}, {"Dacio", "Erika"},

	{"Salvador", "Dacio"}, {"Salvador", "Erika"},

	{"Xavier", "Erika"}, {"Xavier", "Zakye"}, {"Xavier", "Deontae"},
	{"Xavier", "Zakye"}, {"Xavier", "Karen"}, {"Xavier", "Hannah"},
	{"Xavier", "Jordan"},
}

// socialLate are registered after the initial links, followed by socialLateLinks.
var (
	socialLate      = []string{"Hannah", "Ciara", "Kyle"}
	socialLateLinks = [][2]string{{"Hannah", "Ciara"}, {"Ciara", "Kyle"}}
)

// Social returns a Constructor that builds the demo friends network.
func Social() Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		for _, p := range socialPeople {
			g.EnsureVertex(p)
		}
		if err := addLinks(g, cfg, socialLinks); err != nil {
			return err
		}
		for _, p := range socialLate {
			g.EnsureVertex(p)
		}

		return addLinks(g, cfg, socialLateLinks)
	}
}

func addLinks(g *core.Graph[string], cfg builderConfig, links [][2]string) error {
	for _, l := range links {
		w := cfg.weight()
		if err := g.AddEdge(l[0], l[1], w); err != nil {
			return fmt.Errorf("%s: AddEdge(%s→%s, w=%d): %w", methodSocial, l[0], l[1], w, err)
		}
	}

	return nil
}
