// SPDX-License-Identifier: EPL-2.0

// Package config holds the game's audio tables and loads overrides for
// them.
//
// Default returns every gameplay event and announcer voice with its
// built-in cooldowns, priorities and clips. LoadFile reads a YAML
// document over those defaults; an entry only replaces the fields it
// names:
//
//	scheduler:
//	  max_concurrent_sounds: 24
//	mix:
//	  combat: 0.6
//	events:
//	  explosion_large:
//	    position_ms: 500
//
// LoadEnv then applies AUDCORE_* variables, optionally from a .env file.
// Apply wires the result into a scheduler.
package config
