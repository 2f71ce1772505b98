package ops

import (
	"bytes"
	"encoding/hex"
	"errors"
	"testing"
	"time"

	"github.com/graphenix/wallet-core/pkg/keys"
	"github.com/graphenix/wallet-core/pkg/memo"
	"github.com/graphenix/wallet-core/pkg/wire"
)

// Compressed generator points for scalars 1 and 2, handy as valid
// public keys with known bytes.
const (
	pubHexOne = "0279be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798"
	pubHexTwo = "02c6047f9441ed7d6d3045406e95c07cd85c778e4b8cef3ca7abac09b95c709ee5"
)

func mustPublicKey(t *testing.T, hexStr string) *keys.PublicKey {
	t.Helper()
	raw, err := hex.DecodeString(hexStr)
	if err != nil {
		t.Fatal(err)
	}
	pub, err := keys.PublicKeyFromBytes(raw)
	if err != nil {
		t.Fatal(err)
	}
	return pub
}

func TestTransferSerializeBody(t *testing.T) {
	op := &Transfer{
		Fee:    AssetAmount{Amount: 0, Asset: 0},
		From:   123,
		To:     456,
		Amount: AssetAmount{Amount: 100000, Asset: 0},
	}

	const want = "0000000000000000007bc803a086010000000000000000"
	if got := hex.EncodeToString(SerializeBody(op)); got != want {
		t.Fatalf("transfer body = %s, want %s", got, want)
	}

	// Framed form prefixes the varint type id.
	if got := hex.EncodeToString(Serialize(op)); got != "00"+want {
		t.Fatalf("framed transfer = %s, want %s", got, "00"+want)
	}
}

func TestTransferWithEncryptedMemo(t *testing.T) {
	from := mustPublicKey(t, pubHexOne)
	to := mustPublicKey(t, pubHexTwo)

	op := &Transfer{
		From:   1,
		To:     2,
		Amount: AssetAmount{Amount: 1, Asset: 0},
		Memo: &memo.Memo{
			From:    from,
			To:      to,
			Nonce:   1,
			Message: []byte{0xde, 0xad},
		},
	}

	want := "000000000000000000" + // fee
		"01" + "02" + // from, to
		"010000000000000000" + // amount
		"01" + // memo present
		pubHexOne + pubHexTwo +
		"0100000000000000" + // nonce
		"02" + "dead" + // message
		"00" // extensions
	if got := hex.EncodeToString(SerializeBody(op)); got != want {
		t.Fatalf("transfer with memo = %s, want %s", got, want)
	}
}

func TestUnencryptedMemoOmitsKeys(t *testing.T) {
	e := wire.NewEncoder()
	writeOptionalMemo(e, &memo.Memo{Message: []byte("hi")})
	if got := hex.EncodeToString(e.Bytes()); got != "01026869" {
		t.Fatalf("bare memo = %s, want 01026869", got)
	}
}

func TestAuthoritySortsWeightMaps(t *testing.T) {
	a := Authority{
		WeightThreshold: 1,
		AccountAuths: []AccountWeight{
			{Account: 5, Weight: 2},
			{Account: 2, Weight: 1},
		},
	}

	e := wire.NewEncoder()
	a.MarshalWire(e)
	want := "01000000" + "02" + "02" + "0100" + "05" + "0200" + "00" + "00"
	if got := hex.EncodeToString(e.Bytes()); got != want {
		t.Fatalf("authority = %s, want %s", got, want)
	}
}

func TestAuthorityKeyOrderIsCanonical(t *testing.T) {
	lo := mustPublicKey(t, pubHexOne)
	hi := mustPublicKey(t, pubHexTwo)

	forward := Authority{
		WeightThreshold: 2,
		KeyAuths:        []KeyWeight{{Key: lo, Weight: 1}, {Key: hi, Weight: 1}},
	}
	reversed := Authority{
		WeightThreshold: 2,
		KeyAuths:        []KeyWeight{{Key: hi, Weight: 1}, {Key: lo, Weight: 1}},
	}

	e1 := wire.NewEncoder()
	forward.MarshalWire(e1)
	e2 := wire.NewEncoder()
	reversed.MarshalWire(e2)
	if !bytes.Equal(e1.Bytes(), e2.Bytes()) {
		t.Fatal("key auth order changed the serialized bytes")
	}
}

func TestAccountOptionsSortsVotes(t *testing.T) {
	memoKey := mustPublicKey(t, pubHexOne)
	o := AccountOptions{
		MemoKey:       memoKey,
		VotingAccount: 5, // proxy-to-self
		Votes:         []VoteID{NewVoteID(1, 7), NewVoteID(0, 3)},
	}

	e := wire.NewEncoder()
	o.MarshalWire(e)
	want := pubHexOne + "05" + "0000" + "0000" +
		"02" + "00030000" + "01070000" + // votes 0:3 then 1:7
		"00"
	if got := hex.EncodeToString(e.Bytes()); got != want {
		t.Fatalf("account options = %s, want %s", got, want)
	}
}

func TestExtSlotFraming(t *testing.T) {
	reward := uint16(10)
	taker := uint16(30)

	e := wire.NewEncoder()
	var slots []extSlot
	slots = append(slots, extSlot{2, func(e *wire.Encoder) { e.WriteUint16(taker) }})
	slots = append(slots, extSlot{0, func(e *wire.Encoder) { e.WriteUint16(reward) }})
	writeExtSlots(e, slots)

	// Two present slots, emitted in index order.
	want := "02" + "00" + "0a00" + "02" + "1e00"
	if got := hex.EncodeToString(e.Bytes()); got != want {
		t.Fatalf("extension slots = %s, want %s", got, want)
	}

	e = wire.NewEncoder()
	writeEmptyExtensions(e)
	if got := hex.EncodeToString(e.Bytes()); got != "00" {
		t.Fatalf("empty extensions = %s, want 00", got)
	}
}

func TestCallOrderUpdateTargetRatioExtension(t *testing.T) {
	ratio := uint16(1750)
	op := &CallOrderUpdate{
		FundingAccount:        100,
		DeltaCollateral:       AssetAmount{Amount: 1, Asset: 0},
		DeltaDebt:             AssetAmount{Amount: 2, Asset: 1},
		TargetCollateralRatio: &ratio,
	}

	want := "000000000000000000" + "64" +
		"010000000000000000" +
		"020000000000000001" +
		"01" + "00" + "d606" // one slot, index 0, u16 1750
	if got := hex.EncodeToString(SerializeBody(op)); got != want {
		t.Fatalf("call order update = %s, want %s", got, want)
	}
}

func TestCreditOfferCreateSortsMaps(t *testing.T) {
	op := &CreditOfferCreate{
		OwnerAccount:       9,
		AssetType:          0,
		Balance:            1000,
		FeeRate:            100,
		MaxDurationSeconds: 3600,
		MinDealAmount:      10,
		Enabled:            true,
		AutoDisableTime:    TimePointSec(0),
		AcceptableCollateral: []CollateralEntry{
			{Asset: 4, Price: Price{Base: AssetAmount{Amount: 1, Asset: 0}, Quote: AssetAmount{Amount: 1, Asset: 4}}},
			{Asset: 1, Price: Price{Base: AssetAmount{Amount: 1, Asset: 0}, Quote: AssetAmount{Amount: 1, Asset: 1}}},
		},
		AcceptableBorrowers: []BorrowerEntry{
			{Account: 30, Maximum: 5},
			{Account: 12, Maximum: 7},
		},
	}

	body := SerializeBody(op)

	swapped := *op
	swapped.AcceptableCollateral = []CollateralEntry{
		op.AcceptableCollateral[1], op.AcceptableCollateral[0],
	}
	swapped.AcceptableBorrowers = []BorrowerEntry{
		op.AcceptableBorrowers[1], op.AcceptableBorrowers[0],
	}
	if !bytes.Equal(body, SerializeBody(&swapped)) {
		t.Fatal("map entry order changed the serialized bytes")
	}

	// First collateral entry on the wire must be asset 1.
	d := wire.NewDecoder(body)
	d.ReadRaw(9 + 1 + 1 + 8 + 4 + 4 + 8 + 1 + 4) // skip through auto_disable_time
	count, _ := d.ReadUvarint()
	if count != 2 {
		t.Fatalf("collateral count = %d, want 2", count)
	}
	first, _ := d.ReadUvarint()
	if first != 1 {
		t.Fatalf("first collateral asset = %d, want 1", first)
	}
}

func TestOpaqueOperationFraming(t *testing.T) {
	op := &OpaqueOperation{ID: TypeAssert, Data: []byte{0x01, 0x02}}
	got := hex.EncodeToString(Serialize(op))
	if got != "24020102" {
		t.Fatalf("opaque = %s, want 24020102", got)
	}
}

func TestOpTypeNames(t *testing.T) {
	if TypeTransfer.Name() != "transfer" {
		t.Errorf("transfer name = %q", TypeTransfer.Name())
	}
	if TypeCreditDealUpdate.Name() != "credit_deal_update" {
		t.Errorf("credit_deal_update name = %q", TypeCreditDealUpdate.Name())
	}
	if OpType(200).Name() != "" {
		t.Errorf("unknown op has name %q", OpType(200).Name())
	}

	got, err := ByName("liquidity_pool_exchange")
	if err != nil {
		t.Fatal(err)
	}
	if got != TypeLiquidityPoolExchange {
		t.Errorf("ByName = %d, want %d", got, TypeLiquidityPoolExchange)
	}
	if _, err := ByName("no_such_operation"); !errors.Is(err, ErrUnknownOperation) {
		t.Errorf("ByName error = %v, want ErrUnknownOperation", err)
	}

	if !TypeFillOrder.IsVirtual() {
		t.Error("fill_order should be virtual")
	}
	if TypeTransfer.IsVirtual() {
		t.Error("transfer should not be virtual")
	}
}

func TestObjectIDStrings(t *testing.T) {
	if got := AccountID(128).String(); got != "1.2.128" {
		t.Errorf("account id = %s", got)
	}
	if got := LiquidityPoolID(3).String(); got != "1.19.3" {
		t.Errorf("pool id = %s", got)
	}

	id, err := ParseAccountID("1.2.42")
	if err != nil {
		t.Fatal(err)
	}
	if id != 42 {
		t.Errorf("parsed account = %d", id)
	}

	for _, bad := range []string{"1.2", "2.2.1", "1.3.5", "1.2.x", ""} {
		if _, err := ParseAccountID(bad); !errors.Is(err, ErrInvalidObjectID) {
			t.Errorf("ParseAccountID(%q) error = %v, want ErrInvalidObjectID", bad, err)
		}
	}
}

func TestVoteIDPacking(t *testing.T) {
	v := NewVoteID(1, 120)
	if v.String() != "1:120" {
		t.Errorf("vote id string = %s", v.String())
	}

	back, err := ParseVoteID("1:120")
	if err != nil {
		t.Fatal(err)
	}
	if back != v {
		t.Errorf("parsed vote id = %d, want %d", back, v)
	}

	e := wire.NewEncoder()
	e.WriteUint32(uint32(v))
	if got := hex.EncodeToString(e.Bytes()); got != "01780000" {
		t.Errorf("packed vote id = %s, want 01780000", got)
	}

	for _, bad := range []string{"1", "a:1", "1:b", "1:2:3"} {
		if _, err := ParseVoteID(bad); err == nil {
			t.Errorf("ParseVoteID(%q) succeeded", bad)
		}
	}
}

func TestTimePointSec(t *testing.T) {
	ts := NewTimePointSec(time.Date(2025, 1, 1, 0, 0, 0, 500, time.UTC))
	if ts != 1735689600 {
		t.Fatalf("time point = %d, want 1735689600", ts)
	}
	e := wire.NewEncoder()
	ts.MarshalWire(e)
	if got := hex.EncodeToString(e.Bytes()); got != "80857467" {
		t.Fatalf("time point bytes = %s, want 80857467", got)
	}
	if !ts.Time().Equal(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("round trip = %v", ts.Time())
	}
}

func TestFeeScheduleSortsByOperation(t *testing.T) {
	fs := FeeSchedule{
		Parameters: []FeeEntry{
			{Op: TypeLimitOrderCreate, Params: &FlatFee{Fee: 5}},
			{Op: TypeTransfer, Params: &FlatFeePerKByte{Fee: 20, PricePerKByte: 10}},
		},
		Scale: 10000,
	}

	e := wire.NewEncoder()
	fs.MarshalWire(e)
	want := "02" +
		"00" + "1400000000000000" + "0a000000" + // transfer first
		"01" + "0500000000000000" +
		"10270000"
	if got := hex.EncodeToString(e.Bytes()); got != want {
		t.Fatalf("fee schedule = %s, want %s", got, want)
	}
}

func TestChainParametersSerialization(t *testing.T) {
	cp := ChainParameters{
		CurrentFees: FeeSchedule{
			Parameters: []FeeEntry{{Op: TypeTransfer, Params: &FlatFee{Fee: 1}}},
			Scale:      10000,
		},
		BlockInterval:                    3,
		MaintenanceInterval:              86400,
		MaintenanceSkipSlots:             3,
		CommitteeProposalReviewPeriod:    1209600,
		MaximumTransactionSize:           2048,
		MaximumBlockSize:                 2000000,
		MaximumTimeUntilExpiration:       86400,
		MaximumProposalLifetime:          2419200,
		MaximumAssetWhitelistAuthorities: 10,
		MaximumAssetFeedPublishers:       10,
		MaximumWitnessCount:              1001,
		MaximumCommitteeCount:            1001,
		MaximumAuthorityMembership:       10,
		ReservePercentOfFee:              2000,
		NetworkPercentOfFee:              2000,
		LifetimeReferrerPercentOfFee:     3000,
		CashbackVestingPeriodSeconds:     31536000,
		CashbackVestingThreshold:         10000000,
		CountNonMemberVotes:              true,
		WitnessPayPerBlock:               1000000,
		WitnessPayVestingSeconds:         86400,
		WorkerBudgetPerDay:               50000000000,
		MaxPredicateOpcode:               1,
		FeeLiquidationThreshold:          10000000,
		AccountsPerFeeScale:              1000,
		AccountFeeScaleBitshifts:         4,
		MaxAuthorityDepth:                2,
	}

	e := wire.NewEncoder()
	cp.MarshalWire(e)
	want := "0100010000000000000010270000" + // fee schedule
		"03" + "80510100" + "03" + "00751200" + // intervals, review period
		"00080000" + "80841e00" + "80510100" + "00ea2400" + // size and lifetime limits
		"0a" + "0a" + "e903" + "e903" + "0a00" + // member limits
		"d007" + "d007" + "b80b" + // fee split percentages
		"8033e101" + "8096980000000000" + // cashback vesting
		"01" + "00" + // vote flags
		"40420f0000000000" + "80510100" + // witness pay and its vesting period
		"00743ba40b000000" + // worker budget
		"0100" + "8096980000000000" + // predicate opcode, liquidation threshold
		"e803" + "04" + "02" + // fee scale, authority depth
		"00" // extensions
	if got := hex.EncodeToString(e.Bytes()); got != want {
		t.Fatalf("chain parameters = %s, want %s", got, want)
	}
}

func TestHTLCPreimageHashes(t *testing.T) {
	preimage := []byte("secret")

	h := HashHTLCPreimageSHA256(preimage)
	if hex.EncodeToString(h[:]) != "2bb80d537b1da3e38bd30361aa855686bde0eacd7162fef6a25fe97bf527a25b" {
		t.Fatalf("sha256 preimage hash = %x", h[:])
	}

	r := HashHTLCPreimageRIPEMD160(preimage)
	if hex.EncodeToString(r[:]) != "cd98bf0202ef07e38e87f6bd9445e5e7331e2c78" {
		t.Fatalf("ripemd160 preimage hash = %x", r[:])
	}

	h160 := HashHTLCPreimageHash160(preimage)
	if hex.EncodeToString(h160[:]) != "d1b64100879ad93ceaa3c15929b6fe8550f54967" {
		t.Fatalf("hash160 preimage hash = %x", h160[:])
	}
}

func TestOperationTypeTags(t *testing.T) {
	cases := []struct {
		op   Operation
		want OpType
	}{
		{&Transfer{}, 0},
		{&LimitOrderCreate{}, 1},
		{&AccountCreate{}, 5},
		{&AssetCreate{}, 10},
		{&ProposalCreate{}, 22},
		{&CommitteeMemberUpdateGlobalParameters{}, 31},
		{&TransferToBlind{}, 39},
		{&HTLCCreate{}, 49},
		{&CustomAuthorityCreate{}, 54},
		{&TicketCreate{}, 57},
		{&LiquidityPoolCreate{}, 59},
		{&SametFundBorrow{}, 67},
		{&CreditOfferAccept{}, 72},
		{&LiquidityPoolUpdate{}, 75},
		{&CreditDealUpdate{}, 76},
		{&LimitOrderUpdate{}, 77},
	}
	for _, tt := range cases {
		if got := tt.op.Type(); got != tt.want {
			t.Errorf("%T.Type() = %d, want %d", tt.op, got, tt.want)
		}
	}
}

func TestBlindTransferSerialization(t *testing.T) {
	op := &BlindTransfer{
		Outputs: []BlindOutput{{Commitment: [33]byte{0x02}}},
	}

	zeros := make([]byte, 32)
	want := "000000000000000000" + // fee
		"00" + // no inputs
		"01" + // one output
		"02" + hex.EncodeToString(zeros) + // commitment
		"00" + // empty range proof
		"00000000" + "00" + "00" + "00" + // zero-value owner authority
		"00" // no stealth memo
	if got := hex.EncodeToString(SerializeBody(op)); got != want {
		t.Fatalf("blind transfer = %s, want %s", got, want)
	}
}

func TestHTLCCreateMemoExtension(t *testing.T) {
	plain := &HTLCCreate{
		From:               10,
		To:                 11,
		Amount:             AssetAmount{Amount: 1, Asset: 0},
		PreimageHash:       HashHTLCPreimageSHA256([]byte("secret")),
		PreimageSize:       6,
		ClaimPeriodSeconds: 86400,
	}
	bare := SerializeBody(plain)

	withMemo := *plain
	withMemo.Memo = &memo.Memo{Message: []byte("x")}
	extended := SerializeBody(&withMemo)

	// Without the memo the extension block is empty; with it the block
	// carries slot 0 followed by the memo body. A present slot already
	// marks the memo present, so no inner presence byte appears.
	if bare[len(bare)-1] != 0x00 {
		t.Fatalf("bare htlc_create extension tail = %02x", bare[len(bare)-1])
	}
	wantTail := []byte{0x01, 0x00, 0x01, 'x'}
	if !bytes.Equal(extended[len(extended)-len(wantTail):], wantTail) {
		t.Fatalf("memo extension tail = %x, want %x", extended[len(extended)-len(wantTail):], wantTail)
	}
	if len(extended) != len(bare)+len(wantTail)-1 {
		t.Fatalf("extended length = %d, want %d", len(extended), len(bare)+len(wantTail)-1)
	}
}
