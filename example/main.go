package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/antchfx/xmlquery"
	"github.com/golang/glog"
	"github.com/shopspring/decimal"

	"github.com/rockstardevs/ofxparser"
)

// Transaction is the subset of a STMTTRN aggregate printed by this example.
type Transaction struct {
	Type   string
	Posted string
	Amount decimal.Decimal
	ID     string
	Name   string
	Memo   string
}

// transactionsFrom walks every STMTTRN in the document.
func transactionsFrom(doc *ofxparser.ParsedDocument) ([]Transaction, error) {
	nodes, err := doc.Find("//STMTTRN")
	if err != nil {
		return nil, err
	}
	txns := make([]Transaction, 0, len(nodes))
	for _, n := range nodes {
		amount, err := decimal.NewFromString(childText(n, "TRNAMT"))
		if err != nil {
			return nil, fmt.Errorf("error - transaction %s has invalid amount: %w", childText(n, "FITID"), err)
		}
		txns = append(txns, Transaction{
			Type:   childText(n, "TRNTYPE"),
			Posted: childText(n, "DTPOSTED"),
			Amount: amount,
			ID:     childText(n, "FITID"),
			Name:   childText(n, "NAME"),
			Memo:   childText(n, "MEMO"),
		})
	}
	return txns, nil
}

func childText(n *xmlquery.Node, name string) string {
	if c := n.SelectElement(name); c != nil {
		return c.InnerText()
	}
	return ""
}

func run(path string) error {
	doc, err := ofxparser.LoadFromPath(path)
	if err != nil {
		var failure *ofxparser.ParseFailure
		if errors.As(err, &failure) {
			for _, e := range failure.Errors {
				glog.Errorf("%s: %s", path, e)
			}
		}
		return err
	}
	glog.V(1).Infof("%s: OFX version %q, decoded as %s", path, doc.Header.Version(), doc.Encoding.Name)

	txns, err := transactionsFrom(doc)
	if err != nil {
		return err
	}
	total := decimal.Zero
	for _, t := range txns {
		posted := t.Posted
		if d, err := ParseDate(t.Posted, nil); err == nil {
			posted = d.Format("2006-01-02")
		}
		fmt.Printf("%s  %-8s %12s  %s %s\n", posted, t.Type, t.Amount.StringFixed(2), t.Name, t.Memo)
		total = total.Add(t.Amount)
	}
	fmt.Printf("%d transactions, total %s\n", len(txns), total.StringFixed(2))
	return nil
}

func main() {
	path := flag.String("path", "", "OFX file to load")
	flag.Parse()
	defer glog.Flush()

	if *path == "" {
		fmt.Fprintln(os.Stderr, "usage: example -path statement.ofx")
		os.Exit(2)
	}
	if err := run(*path); err != nil {
		glog.Errorf("error loading %s - %v", *path, err)
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
