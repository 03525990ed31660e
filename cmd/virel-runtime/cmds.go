package main

import (
	"os"
	"strings"

	"github.com/virel-project/virel-runtime/chaintype"
	"github.com/virel-project/virel-runtime/node"
	"github.com/virel-project/virel-runtime/rpc/noderpc"
	"github.com/virel-project/virel-runtime/runtime"
	"github.com/virel-project/virel-runtime/util"

	"github.com/ergochat/readline"
)

type Cmd struct {
	Names  []string
	Action func(args []string)
	Args   string
}

var commands = Commands{}

type Commands []Cmd

// Do completes the first command name matching the typed prefix.
func (c Commands) Do(line []rune, pos int) (newLine [][]rune, length int) {
	if len(line) == 0 {
		return [][]rune{}, 0
	}

	lineStr := string(line)

	sols := [][]rune{}
	for _, v := range c {
		if strings.HasPrefix(v.Names[0], lineStr) {
			sols = append(sols, []rune(v.Names[0][len(lineStr):]))
		}
	}

	return sols, pos
}

func printReceipts(receipts []runtime.Receipt) {
	for _, r := range receipts {
		if r.Success() {
			Log.Infof("%d. %s: ok", r.Index, r.Caller)
		} else {
			Log.Warnf("%d. %s: %v", r.Index, r.Caller, r.Err)
		}
	}
}

func prompts(n *node.Node) {
	commands = append(commands, []Cmd{{
		Names: []string{"help"},
		Args:  "",
		Action: func(args []string) {
			Log.Info("Commands:")
			for _, v := range commands {
				Log.Infof(" %s %s", util.PadL(strings.Join(v.Names, ", "), 16), v.Args)
			}
		},
	}, {
		Names: []string{"status", "info"},
		Args:  "",
		Action: func(args []string) {
			total, err := n.TotalIssuance()
			if err != nil {
				Log.Err(err)
			}
			Log.Infof("Block number: %d; total issuance: %s", n.BlockNumber(), total)
			Log.Infof("State root: %s", n.StateRoot())
			Log.Infof("Pending extrinsics: %d", len(n.Pending()))
		},
	}, {
		Names: []string{"balance"},
		Args:  "<account>",
		Action: func(args []string) {
			if len(args) != 1 {
				Log.Err("usage: balance <account>")
				return
			}
			Log.Infof("%s: %s", args[0], n.Balance(runtime.AccountId(args[0])))
		},
	}, {
		Names: []string{"nonce"},
		Args:  "<account>",
		Action: func(args []string) {
			if len(args) != 1 {
				Log.Err("usage: nonce <account>")
				return
			}
			Log.Infof("%s: %d", args[0], n.Nonce(runtime.AccountId(args[0])))
		},
	}, {
		Names: []string{"claim_of"},
		Args:  "<content>",
		Action: func(args []string) {
			if len(args) != 1 {
				Log.Err("usage: claim_of <content>")
				return
			}
			content := noderpc.ContentKey(args[0])
			owner, ok := n.Claim(content)
			if !ok {
				Log.Infof("%s is not claimed", content)
				return
			}
			Log.Infof("%s is owned by %s", content, owner)
		},
	}, {
		Names: []string{"transfer"},
		Args:  "<from> <to> <amount>",
		Action: func(args []string) {
			if len(args) != 3 {
				Log.Err("usage: transfer <from> <to> <amount>")
				return
			}
			amount, err := chaintype.ParseBalance(args[2])
			if err != nil {
				Log.Err("invalid amount:", err)
				return
			}
			l := n.Submit(runtime.AccountId(args[0]), runtime.TransferCall(runtime.AccountId(args[1]), amount))
			Log.Infof("transfer queued, %d pending", l)
		},
	}, {
		Names: []string{"create_claim"},
		Args:  "<account> <content>",
		Action: func(args []string) {
			if len(args) != 2 {
				Log.Err("usage: create_claim <account> <content>")
				return
			}
			content := noderpc.ContentKey(args[1])
			l := n.Submit(runtime.AccountId(args[0]), runtime.CreateClaimCall(content))
			Log.Infof("claim of %s queued, %d pending", content, l)
		},
	}, {
		Names: []string{"revoke_claim"},
		Args:  "<account> <content>",
		Action: func(args []string) {
			if len(args) != 2 {
				Log.Err("usage: revoke_claim <account> <content>")
				return
			}
			content := noderpc.ContentKey(args[1])
			l := n.Submit(runtime.AccountId(args[0]), runtime.RevokeClaimCall(content))
			Log.Infof("revoke of %s queued, %d pending", content, l)
		},
	}, {
		Names: []string{"pending"},
		Args:  "",
		Action: func(args []string) {
			for i, v := range n.Pending() {
				Log.Infof("%d. %s: %+v", i, v.Caller, v.Call)
			}
		},
	}, {
		Names: []string{"seal"},
		Args:  "",
		Action: func(args []string) {
			receipts, err := n.SealBlock()
			if err != nil {
				Log.Err(err)
				return
			}
			printReceipts(receipts)
		},
	}, {
		Names: []string{"exit", "quit"},
		Args:  "",
		Action: func(args []string) {
			n.Close()
			os.Exit(0)
		},
	}}...)

	l, err := readline.NewEx(&readline.Config{
		Prompt:          "\033[32m>\033[0m ",
		AutoComplete:    commands,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",

		HistorySearchFold: true,
	})
	if err != nil {
		panic(err)
	}
	defer l.Close()

	l.CaptureExitSignal()

	Log.SetStdout(l.Stdout())
	Log.SetStderr(l.Stderr())

	for {
		line, err := l.ReadLine()
		if err != nil {
			Log.Err(err)
			n.Close()
			os.Exit(0)
		}

		args := strings.Fields(line)
		if len(args) == 0 {
			continue
		}

		executed := false
		for _, v := range commands {
			for _, v2 := range v.Names {
				if v2 == args[0] {
					v.Action(args[1:])
					executed = true
					break
				}
			}
		}
		if !executed {
			Log.Err("unknown command, use help to see a list of commands")
		}
	}
}
