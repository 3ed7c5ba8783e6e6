// Package ashare downloads historical daily quotes for China A-share
// stocks into a local dataset of plain CSV files.
//
// The core functionalities include:
//   - Stock List Caching: the list of tradable stocks is fetched once from
//     the remote quote service and persisted locally; subsequent runs reuse
//     the cached list unless a refresh is forced.
//   - Success Ledger: every stock whose history has been downloaded is
//     recorded in an append-only ledger file, so interrupted or repeated
//     runs skip completed work and resume where they left off.
//   - Sequential Downloading: one request at a time, with a mandatory
//     minimum delay between requests to stay below the remote service's
//     throttling threshold.
//   - Data Persistence: every artifact (list cache, ledger, per-stock
//     series) is a human-readable CSV file, friendly to versioning and to
//     downstream tooling.
//
// This package serves as the foundational logic for the `asd` command-line
// tool.
package ashare
