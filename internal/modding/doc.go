// Package modding provides the host side a mod is loaded into: its manifest,
// the registry other mods publish optional APIs on, config persistence and
// the monitor used for logging.
//
// A mod looks up an optional collaborator by unique ID and simply skips the
// integration when it is absent:
//
//	api, ok := modding.GetAPI[SomeAPI](mod.ModRegistry(), "author.OtherMod")
//	if !ok {
//		return
//	}
package modding
