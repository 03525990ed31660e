package main

import (
	"github.com/pkg/errors"
	"github.com/virel-project/virel-runtime/chaintype"
	"github.com/virel-project/virel-runtime/node"
	"github.com/virel-project/virel-runtime/runtime"
)

type demoScenario struct {
	Name       string
	Extrinsics []runtime.Extrinsic

	Balances map[runtime.AccountId]uint64
	Nonces   map[runtime.AccountId]uint64
	Claims   map[runtime.Content]runtime.AccountId
}

func demoGenesis() runtime.Genesis {
	return runtime.Genesis{
		Balances: map[runtime.AccountId]runtime.Balance{"alice": chaintype.NewBalance(100)},
	}
}

// Each scenario is one block executed on a fresh in-memory node.
var demoScenarios = []demoScenario{
	{
		Name: "transfer and claim",
		Extrinsics: []runtime.Extrinsic{
			{Caller: "alice", Call: runtime.TransferCall("bob", chaintype.NewBalance(10))},
			{Caller: "alice", Call: runtime.CreateClaimCall("doc")},
		},
		Balances: map[runtime.AccountId]uint64{"alice": 90, "bob": 10},
		Nonces:   map[runtime.AccountId]uint64{"alice": 2},
		Claims:   map[runtime.Content]runtime.AccountId{"doc": "alice"},
	},
	{
		Name: "failure isolation",
		Extrinsics: []runtime.Extrinsic{
			{Caller: "alice", Call: runtime.TransferCall("bob", chaintype.NewBalance(1000))},
			{Caller: "alice", Call: runtime.TransferCall("charlie", chaintype.NewBalance(10))},
		},
		Balances: map[runtime.AccountId]uint64{"alice": 90, "bob": 0, "charlie": 10},
		Nonces:   map[runtime.AccountId]uint64{"alice": 2},
	},
}

func runDemo() error {
	for _, sc := range demoScenarios {
		Log.Info("Scenario:", sc.Name)
		err := runScenario(sc)
		if err != nil {
			return errors.Wrap(err, sc.Name)
		}
	}
	return nil
}

func runScenario(sc demoScenario) error {
	n, err := node.New(nil, demoGenesis())
	if err != nil {
		return err
	}
	defer n.Close()

	for _, e := range sc.Extrinsics {
		n.Submit(e.Caller, e.Call)
	}
	receipts, err := n.SealBlock()
	if err != nil {
		return err
	}
	printReceipts(receipts)

	if n.BlockNumber() != 1 {
		return errors.Errorf("block number %d, expected 1", n.BlockNumber())
	}
	for who, amount := range sc.Balances {
		got := n.Balance(who)
		Log.Infof("%s: balance %s, nonce %d", who, got, n.Nonce(who))
		if got != chaintype.NewBalance(amount) {
			return errors.Errorf("balance of %s is %s, expected %d", who, got, amount)
		}
	}
	for who, nonce := range sc.Nonces {
		if n.Nonce(who) != nonce {
			return errors.Errorf("nonce of %s is %d, expected %d", who, n.Nonce(who), nonce)
		}
	}
	for content, owner := range sc.Claims {
		got, ok := n.Claim(content)
		if !ok || got != owner {
			return errors.Errorf("claim %s owned by %q, expected %s", content, got, owner)
		}
		Log.Infof("%s is owned by %s", content, got)
	}
	Log.Infof("Block number: %d; state root: %s", n.BlockNumber(), n.StateRoot())

	return nil
}
